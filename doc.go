// Package eb holds the wire types shared by the schema builder packages:
//
// - SchemaProp / Params / Option: the flat descriptor handed to the editor
// - ComponentDefinition, DeviceRange, ConfigToken, CustomType and Bundle
// - A stable error model via Issues (definition id, path, code, message)
//
// Design policy:
// - Keep only public types in the root package; builders live under dsl/,
//   catalogs under registry/, file loading under manifest/.
// - Configuration errors are reported as Issues when a definition is
//   materialized or a registry is built, never later.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.Schema().
//	    Field("name", dsl.String().BuildOnly()).
//	    Field("height", dsl.Number().DefaultValue(45))
//	def := dsl.Define[Values]("banner", s)
//	bundle, err := cfg.Bundle(def)
package eb

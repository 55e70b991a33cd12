package registry

import (
	"slices"

	eb "github.com/timoconnellaus/eb"
)

// DeviceSpec is one row of a device table.
type DeviceSpec struct {
	ID         string
	W, H       int
	Breakpoint *int // nil for the widest device
	Label      string
	Hidden     bool
	IsMain     bool
}

func bp(v int) *int { return &v }

// DefaultDeviceTable returns a fresh copy of the built-in presets, one per
// breakpoint in eb.Breakpoints() order. xl is the main device.
func DefaultDeviceTable() []DeviceSpec {
	return []DeviceSpec{
		{ID: "xs", W: 375, H: 667, Breakpoint: bp(568), Label: "Mobile"},
		{ID: "sm", W: 667, H: 375, Breakpoint: bp(768), Label: "Mobile SM h", Hidden: true},
		{ID: "md", W: 768, H: 1024, Breakpoint: bp(992), Label: "Tablet"},
		{ID: "lg", W: 1024, H: 768, Breakpoint: bp(1280), Label: "TabletH", Hidden: true},
		{ID: "xl", W: 1366, H: 768, Breakpoint: bp(1600), Label: "Desktop", IsMain: true},
		{ID: "2xl", W: 1920, H: 920, Label: "Large desktop"},
	}
}

// DeviceBuilder overrides fields of one device. Only the fields that were set
// replace the table values, so Hidden(false) and W(0) take effect.
type DeviceBuilder struct {
	id            string
	w, h          *int
	breakpoint    *int
	breakpointSet bool
	label         *string
	hidden        *bool
	main          bool
}

// Device starts an override for the device with the given breakpoint id.
func Device(id string) *DeviceBuilder { return &DeviceBuilder{id: id} }

func (d *DeviceBuilder) W(v int) *DeviceBuilder {
	d.w = &v
	return d
}

func (d *DeviceBuilder) H(v int) *DeviceBuilder {
	d.h = &v
	return d
}

func (d *DeviceBuilder) Breakpoint(v int) *DeviceBuilder {
	d.breakpoint, d.breakpointSet = &v, true
	return d
}

// NoBreakpoint clears the breakpoint (the device has no upper bound).
func (d *DeviceBuilder) NoBreakpoint() *DeviceBuilder {
	d.breakpoint, d.breakpointSet = nil, true
	return d
}

func (d *DeviceBuilder) Label(s string) *DeviceBuilder {
	d.label = &s
	return d
}

func (d *DeviceBuilder) Hidden(v bool) *DeviceBuilder {
	d.hidden = &v
	return d
}

// Main makes this the main device; every other device loses the flag.
func (d *DeviceBuilder) Main() *DeviceBuilder {
	d.main = true
	return d
}

func (d *DeviceBuilder) apply(s *DeviceSpec) {
	if d.w != nil {
		s.W = *d.w
	}
	if d.h != nil {
		s.H = *d.h
	}
	if d.breakpointSet {
		s.Breakpoint = nil
		if d.breakpoint != nil {
			s.Breakpoint = bp(*d.breakpoint)
		}
	}
	if d.label != nil {
		s.Label = *d.label
	}
	if d.hidden != nil {
		s.Hidden = *d.hidden
	}
}

// Devices is an immutable, ordered device catalog.
type Devices struct {
	specs []DeviceSpec
}

// NewDevices overlays overrides on table. Unknown or repeated ids are
// reported as issues.
func NewDevices(table []DeviceSpec, overrides ...*DeviceBuilder) (*Devices, error) {
	specs := make([]DeviceSpec, len(table))
	copy(specs, table)
	for i := range specs {
		if specs[i].Breakpoint != nil {
			specs[i].Breakpoint = bp(*specs[i].Breakpoint)
		}
	}
	var iss eb.Issues
	seen := map[string]bool{}
	for _, o := range overrides {
		if o == nil {
			continue
		}
		at := eb.Root().Field("devices").Field(o.id)
		if seen[o.id] {
			iss = eb.AppendIssues(iss, at.Issue(eb.CodeDuplicateKey, "key", o.id))
			continue
		}
		seen[o.id] = true
		i := slices.IndexFunc(specs, func(s DeviceSpec) bool { return s.ID == o.id })
		if i < 0 {
			iss = eb.AppendIssues(iss, at.Issue(eb.CodeUnknownDevice, "key", o.id))
			continue
		}
		o.apply(&specs[i])
		if o.main {
			setMain(specs, o.id)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return &Devices{specs: specs}, nil
}

func setMain(specs []DeviceSpec, id string) {
	for i := range specs {
		specs[i].IsMain = specs[i].ID == id
	}
}

// MainDevice returns a copy of d with id as the only main device.
func (d *Devices) MainDevice(id string) (*Devices, error) {
	if !slices.ContainsFunc(d.specs, func(s DeviceSpec) bool { return s.ID == id }) {
		return nil, eb.Issues{eb.Root().Field("devices").Field(id).Issue(eb.CodeUnknownDevice, "key", id)}
	}
	out := &Devices{specs: slices.Clone(d.specs)}
	setMain(out.specs, id)
	return out, nil
}

// Main returns the id of the main device, or "" when none is flagged.
func (d *Devices) Main() string {
	for _, s := range d.specs {
		if s.IsMain {
			return s.ID
		}
	}
	return ""
}

// Ranges returns the wire representation in table order.
func (d *Devices) Ranges() []eb.DeviceRange {
	out := make([]eb.DeviceRange, 0, len(d.specs))
	for _, s := range d.specs {
		r := eb.DeviceRange{ID: s.ID, W: s.W, H: s.H, Label: s.Label, Hidden: s.Hidden, IsMain: s.IsMain}
		if s.Breakpoint != nil {
			r.Breakpoint = bp(*s.Breakpoint)
		}
		out = append(out, r)
	}
	return out
}

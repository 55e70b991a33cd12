package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "name" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var messages = map[string]map[string]string{
	"en": {
		"duplicate_prop":         "prop {name} is declared more than once",
		"nested_group":           "group {name} cannot contain another group",
		"nil_prop":               "prop {name} is nil",
		"nil_entry":              "{key} is nil",
		"empty_name":             "field name is empty",
		"empty_options":          "select needs at least one option",
		"duplicate_option":       "option {value} is declared more than once",
		"invalid_range":          "min {min} is greater than max {max}",
		"invalid_default":        "default value is not allowed",
		"unknown_type":           "type {key} is not registered",
		"unknown_token":          "token {key} is not registered",
		"unknown_widget":         "widget {key} is not registered",
		"unknown_device":         "device {key} is not a known breakpoint",
		"unknown_component_type": "component type {key} is not registered",
		"missing_id":             "definition id is empty",
		"duplicate_definition":   "definition {key} is declared more than once",
		"duplicate_default":      "more than one default token",
		"duplicate_key":          "key {key} is declared more than once",
		"invalid_token":          "token value has the wrong shape",
		"value_shape":            "values type does not match the schema",
		"invalid_manifest":       "manifest is invalid",
	},
	"ja": {
		"duplicate_prop":         "プロパティ {name} が重複しています",
		"nested_group":           "グループ {name} にグループは入れられません",
		"nil_prop":               "プロパティ {name} が nil です",
		"nil_entry":              "{key} が nil です",
		"empty_name":             "フィールド名が空です",
		"empty_options":          "選択肢が必要です",
		"duplicate_option":       "選択肢 {value} が重複しています",
		"invalid_range":          "最小値 {min} が最大値 {max} を超えています",
		"invalid_default":        "既定値が不正です",
		"unknown_type":           "型 {key} は未登録です",
		"unknown_token":          "トークン {key} は未登録です",
		"unknown_widget":         "ウィジェット {key} は未登録です",
		"unknown_device":         "デバイス {key} は未知のブレークポイントです",
		"unknown_component_type": "コンポーネント型 {key} は未登録です",
		"missing_id":             "定義 ID が空です",
		"duplicate_definition":   "定義 {key} が重複しています",
		"duplicate_default":      "既定トークンが複数あります",
		"duplicate_key":          "キー {key} が重複しています",
		"invalid_token":          "トークン値の形が不正です",
		"value_shape":            "値の型がスキーマと一致しません",
		"invalid_manifest":       "マニフェストが不正です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := messages[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }

package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "overflow":
			return "値が範囲外です"
		case "not_finite":
			return "有限の数値ではありません"
		case "invalid_enum":
			return "列挙値が不正です"
		case "discriminator_missing":
			return "判別キーが不足しています"
		case "discriminator_unknown":
			return "未知の判別値です"
		case "variant_unregistered":
			return "未登録のバリアントです"
		case "schema_violation":
			return "スキーマ定義が不正です"
		case "missing_name":
			return "名前が必要です"
		case "custom_panic":
			return "カスタムコーデックが異常終了しました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "overflow":
			return "value out of range"
		case "not_finite":
			return "number is not finite"
		case "invalid_enum":
			return "invalid enum value"
		case "discriminator_missing":
			return "discriminator missing"
		case "discriminator_unknown":
			return "unknown discriminator value"
		case "variant_unregistered":
			return "unregistered variant alternative"
		case "schema_violation":
			return "schema definition violated"
		case "missing_name":
			return "name required"
		case "custom_panic":
			return "custom codec panicked"
		}
	}
	return code
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

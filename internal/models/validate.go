package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct fields are checked in
// declaration order and each field stops at its first failing rule, so the
// returned messages follow the form's field order and a blank field never
// also reports a length error.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "required" treats a whitespace-only string as present; forms need
	// blank-after-trim to count as missing.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

// messages maps struct field + failed rule to the fixed user-facing text.
var messages = map[string]map[string]string{
	"Title": {
		"notblank": "タイトルを入力してください。",
		"max":      "タイトルは100文字以内で入力してください。",
	},
	"Body": {
		"notblank": "本文を入力してください。",
	},
	"UserName": {
		"notblank": "投稿者名を入力してください。",
		"max":      "投稿者名は50文字以内で入力してください。",
	},
	"BlogID": {
		"required": "コメント先のブログが指定されていません。",
	},
}

// validateEntity runs the struct rules and maps each failure to its fixed
// message. Returns nil when the entity is valid.
func validateEntity(entity any) []string {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var msgs []string
	for _, fe := range verrs {
		if m, ok := messages[fe.StructField()][fe.Tag()]; ok {
			msgs = append(msgs, m)
			continue
		}
		msgs = append(msgs, fe.Error())
	}
	return msgs
}

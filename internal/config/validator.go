package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

const tagRequiredForWordsAPI = "required_for_words_api"

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterStructValidation(validateRapidAPICredentials, DictionariesConfig{})
	if err := validate.RegisterTranslation(tagRequiredForWordsAPI, trans, func(ut ut.Translator) error {
		return ut.Add(tagRequiredForWordsAPI, "{0} must be set when api is {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tagRequiredForWordsAPI, strings.TrimPrefix(fe.Namespace(), "Config."), APIWordsAPI)
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register %s translation: %w", tagRequiredForWordsAPI, err)
	}

	return validate, trans, nil
}

// validateRapidAPICredentials requires the RapidAPI host and key when WordsAPI is selected.
func validateRapidAPICredentials(sl validator.StructLevel) {
	dictionaries := sl.Current().Interface().(DictionariesConfig)
	if dictionaries.API != APIWordsAPI {
		return
	}
	if dictionaries.RapidAPI.Host == "" {
		sl.ReportError(dictionaries.RapidAPI.Host, "rapidapi.host", "Host", tagRequiredForWordsAPI, "")
	}
	if dictionaries.RapidAPI.Key == "" {
		sl.ReportError(dictionaries.RapidAPI.Key, "rapidapi.key", "Key", tagRequiredForWordsAPI, "")
	}
}

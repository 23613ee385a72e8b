package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"tavola/shared/constant"
	"tavola/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

const halfHourMinutes = 30

func registerDayValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DayFormat, str)

	return err == nil
}

func registerHalfHourValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	slot, err := time.Parse(constant.SlotFormat, str)
	if err != nil {
		return false
	}

	return slot.Minute()%halfHourMinutes == 0
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
	if name == "-" {
		return constant.Empty
	}

	if name == constant.Empty {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	custom := map[string]val.Func{
		"day":      registerDayValidation,
		"halfhour": registerHalfHourValidation,
	}

	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and validates it. Both a malformed body and a
// failing rule come back as a 400 failure.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	err := decoder.Decode(data)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateFields validates data and reports one message per failing field, keyed by
// its JSON name. A nil map means the struct is valid.
func ValidateFields[T any](data *T) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return map[string]string{constant.Empty: err.Error()}
	}

	fields := make(map[string]string, len(valErrors))

	for _, valErr := range valErrors {
		if _, exists := fields[valErr.Field()]; exists {
			continue
		}

		fields[valErr.Field()] = fieldMessage(valErr)
	}

	return fields
}

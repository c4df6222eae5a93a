package loader

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/smartvend/internal/domain"
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Mensagens de erro usam o nome da coluna, não o nome do campo Go
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Decimais são validados como float64 (gte, lte, ...)
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// validateRecord aplica a política estrita: produto obrigatório e quantidade, preço e custo não negativos.
func (l *Loader) validateRecord(record *domain.SalesRecord, row int) error {
	err := l.validate.Struct(record)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	return &RowError{
		Row:    row,
		Column: fe.Field(),
		Value:  fmt.Sprint(fe.Value()),
		Err:    describeViolation(fe),
	}
}

func describeViolation(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("value is required")
	case "gte":
		return fmt.Errorf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Errorf("failed %q validation", fe.Tag())
	}
}

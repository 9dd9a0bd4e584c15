package shipment

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"fulfillment-portal/models"
	"fulfillment-portal/pricing"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterStructValidation(shipmentFormRules, models.ShipmentForm{})
	})
	return validate
}

// shipmentFormRules holds the checks that depend on the shipment type
func shipmentFormRules(sl validator.StructLevel) {
	form := sl.Current().Interface().(models.ShipmentForm)

	switch form.ShipmentType {
	case models.ShipmentTypePallet:
		if form.PalletSubType == "" {
			sl.ReportError(form.PalletSubType, "palletSubType", "PalletSubType", "required", "")
		}

	case models.ShipmentTypeProduct:
		if form.Service == "" {
			sl.ReportError(form.Service, "service", "Service", "required", "")
		} else if !pricing.IsPrepService(form.Service) {
			sl.ReportError(form.Service, "service", "Service", "prepservice", "")
		}

		if form.ProductType == "" {
			sl.ReportError(form.ProductType, "productType", "ProductType", "required", "")
		}
		if form.ProductType == models.ProductTypeCustom && strings.TrimSpace(form.CustomDimensions) == "" {
			sl.ReportError(form.CustomDimensions, "customDimensions", "CustomDimensions", "required", "")
		}

		if form.ProductType != models.ProductTypeCustom {
			for i, line := range form.Shipments {
				if line.UnitPrice <= 0 {
					sl.ReportError(line.UnitPrice, fmt.Sprintf("shipments[%d].unitPrice", i),
						fmt.Sprintf("Shipments[%d].UnitPrice", i), "priced", "")
				}
			}
		}
	}

	if form.Date != "" {
		if _, ok := models.ParseDate(form.Date); !ok {
			sl.ReportError(form.Date, "date", "Date", "date", "")
		}
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "prepservice":
		return fmt.Sprintf("must be %s or %s", models.ServicePrepFBA, models.ServicePrepFBM)
	case "priced":
		return "must be greater than 0 (no pricing available for this line)"
	case "date":
		return "must be a valid date"
	}
	return "is invalid"
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// ValidateForm runs the schema checks on a submitted form.
// It returns FieldErrors, which unwraps to ErrInvalidRequest, or nil.
func ValidateForm(form models.ShipmentForm) error {
	err := formValidator().Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	fields := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
	}
	return fields
}

package shipment

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"fulfillment-portal/models"
)

// DeriveService returns the service stored on a request. Box and pallet requests
// ignore whatever service the form carried.
func DeriveService(shipmentType, palletSubType, service string) string {
	switch shipmentType {
	case models.ShipmentTypeBox:
		return models.ServiceBoxForwarding
	case models.ShipmentTypePallet:
		if palletSubType == models.PalletSubTypeExistingInventory {
			return models.ServicePalletExistingInventory
		}
		return models.ServicePalletForwarding
	}
	return service
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func requested(count *int) bool {
	return count != nil && *count > 0
}

// AdditionalServices lists the extra services a form asked for
func AdditionalServices(form models.ShipmentForm) []string {
	var services []string
	if requested(form.BubbleWrapFeet) {
		services = append(services, models.AdditionalServiceBubbleWrap)
	}
	if requested(form.StickerRemovalItems) {
		services = append(services, models.AdditionalServiceStickerRemoval)
	}
	if requested(form.WarningLabels) {
		services = append(services, models.AdditionalServiceWarningLabels)
	}
	return services
}

// Assemble turns a validated form into the record that gets persisted.
// Fields without a meaningful value are left nil and lines keep only their stored fields.
func Assemble(form models.ShipmentForm, user models.User, id string, now time.Time) (models.ShipmentRequestRecord, error) {
	date, ok := models.ParseDate(form.Date)
	if !ok {
		return models.ShipmentRequestRecord{}, fmt.Errorf("%w: unparseable date %q", ErrInvalidRequest, form.Date)
	}

	record := models.ShipmentRequestRecord{
		ID:                 id,
		UserID:             user.ID,
		UserEmail:          optional(user.Email),
		CompanyName:        optional(user.CompanyName),
		ShipmentType:       form.ShipmentType,
		Service:            DeriveService(form.ShipmentType, form.PalletSubType, form.Service),
		Date:               date,
		Remarks:            optional(form.Remarks),
		AdditionalServices: AdditionalServices(form),
		Status:             models.ShipmentRequestStatusPending,
		CreatedAt:          now.UTC(),
	}

	switch form.ShipmentType {
	case models.ShipmentTypePallet:
		record.PalletSubType = optional(form.PalletSubType)
	case models.ShipmentTypeProduct:
		record.ProductType = optional(form.ProductType)
		if form.ProductType == models.ProductTypeCustom {
			record.CustomDimensions = optional(form.CustomDimensions)
		}
	}

	record.Shipments = make([]models.PersistedLine, 0, len(form.Shipments))
	for _, line := range form.Shipments {
		packOf := line.PackOf
		if packOf <= 0 {
			packOf = 1
		}
		unitPrice := line.UnitPrice
		if unitPrice < 0 {
			unitPrice = 0
		}
		record.Shipments = append(record.Shipments, models.PersistedLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			PackOf:    packOf,
			UnitPrice: unitPrice,
		})
	}
	return record, nil
}

// StripUndefined removes nil entries, including typed nil pointers, from nested maps
// and slices. Non-nil pointers are dereferenced and time values are kept as they are.
func StripUndefined(v interface{}) interface{} {
	cleaned, _ := strip(reflect.ValueOf(v))
	return cleaned
}

func strip(rv reflect.Value) (interface{}, bool) {
	if !rv.IsValid() {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, false
		}
		return strip(rv.Elem())

	case reflect.Map:
		if rv.IsNil() {
			return nil, false
		}
		out := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			if value, ok := strip(iter.Value()); ok {
				out[fmt.Sprint(iter.Key().Interface())] = value
			}
		}
		return out, true

	case reflect.Slice:
		if rv.IsNil() {
			return nil, false
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Interface(), true
		}
		out := make([]interface{}, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if value, ok := strip(rv.Index(i)); ok {
				out = append(out, value)
			}
		}
		return out, true
	}
	// scalars and structs such as time.Time are kept whole
	return rv.Interface(), true
}

package server

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/joseph-ayodele/groupbuy/internal/entity"
	"github.com/joseph-ayodele/groupbuy/internal/schema"
)

// decodeReceipt parses a submitted body as a protobuf Struct, checks it
// against the receipt schema and reads the fields out of it. protojson is
// strict where encoding/json is lenient: the body must be a single JSON
// object with valid UTF-8 and no repeated keys.
func decodeReceipt(body []byte) (*entity.Receipt, error) {
	var doc structpb.Struct
	if err := protojson.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse receipt: %w", err)
	}
	if err := schema.CheckReceipt(doc.AsMap()); err != nil {
		return nil, fmt.Errorf("check receipt: %w", err)
	}
	return receiptFromStruct(&doc), nil
}

// receiptFromStruct assumes doc already passed the receipt schema.
func receiptFromStruct(doc *structpb.Struct) *entity.Receipt {
	f := doc.GetFields()
	rec := &entity.Receipt{
		Timestamp:            f["timestamp"].GetStringValue(),
		Name:                 f["name"].GetStringValue(),
		Email:                f["email"].GetStringValue(),
		ExchangeRateEURToCAD: f["exchangeRateEurToCad"].GetNumberValue(),
		ShippingRate:         f["shippingRate"].GetNumberValue(),
		SpendLimitEUR:        f["spendLimitEur"].GetNumberValue(),
		SubtotalCADBase:      f["subtotalCadBase"].GetNumberValue(),
		ShippingCAD:          f["shippingCad"].GetNumberValue(),
		TotalCAD:             f["totalCad"].GetNumberValue(),
	}
	for _, v := range f["paymentEmails"].GetListValue().GetValues() {
		rec.PaymentEmails = append(rec.PaymentEmails, v.GetStringValue())
	}
	for _, v := range f["items"].GetListValue().GetValues() {
		line := v.GetStructValue().GetFields()
		rec.Items = append(rec.Items, entity.ReceiptLine{
			ElementID:    line["elementId"].GetStringValue(),
			DesignID:     line["designId"].GetStringValue(),
			Color:        line["color"].GetStringValue(),
			Qty:          int(line["qty"].GetNumberValue()),
			PriceEUR:     line["priceEur"].GetNumberValue(),
			PriceCADBase: line["priceCadBase"].GetNumberValue(),
		})
	}
	return rec
}

package usb

import (
	"testing"

	"github.com/google/gousb"
)

func TestIdentifyKnownAdapters(t *testing.T) {
	db := NewAdapterDatabase()

	cases := []struct {
		vendorID  uint16
		productID uint16
		model     string
	}{
		{0x0403, 0x6001, "FT232R"},
		{0x067B, 0x2303, "PL2303"},
		{0x10C4, 0xEA60, "CP2102/CP2109"},
		{0x1A86, 0x7523, "CH340"},
	}

	for _, tc := range cases {
		vendor, product := db.Identify(gousb.ID(tc.vendorID), gousb.ID(tc.productID))
		if vendor == nil || product == nil {
			t.Errorf("Identify(%04x, %04x): not found", tc.vendorID, tc.productID)
			continue
		}
		if product.Model != tc.model {
			t.Errorf("Identify(%04x, %04x).Model = %q, want %q",
				tc.vendorID, tc.productID, product.Model, tc.model)
		}
	}
}

func TestIdentifyUnknownDevice(t *testing.T) {
	db := NewAdapterDatabase()

	if vendor, _ := db.Identify(gousb.ID(0xDEAD), gousb.ID(0xBEEF)); vendor != nil {
		t.Errorf("Identify unknown vendor: got %v, want nil", vendor)
	}

	// Known vendor, unknown product
	vendor, product := db.Identify(gousb.ID(0x0403), gousb.ID(0xFFFF))
	if vendor == nil {
		t.Error("Identify known vendor with unknown product: vendor = nil")
	}
	if product != nil {
		t.Errorf("Identify unknown product: got %v, want nil", product)
	}
}

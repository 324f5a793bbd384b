// internal/discovery/usb/database.go
package usb

import "github.com/google/gousb"

// AdapterDatabase contains known USB to RS-232 bridge chips, used to
// tell which enumerated serial port is the control cable.
type AdapterDatabase struct {
	vendors map[gousb.ID]*VendorInfo
}

// VendorInfo contains vendor-specific information
type VendorInfo struct {
	Name     string
	products map[gousb.ID]*ProductInfo
}

// ProductInfo contains product-specific information
type ProductInfo struct {
	Model      string
	Confidence float64
}

// NewAdapterDatabase creates and initializes the adapter database
func NewAdapterDatabase() *AdapterDatabase {
	db := &AdapterDatabase{
		vendors: make(map[gousb.ID]*VendorInfo),
	}
	db.initializeDatabase()
	return db
}

// initializeDatabase populates the known adapter database
func (db *AdapterDatabase) initializeDatabase() {
	// FTDI (0x0403)
	ftdi := &VendorInfo{
		Name:     "Future Technology Devices International",
		products: make(map[gousb.ID]*ProductInfo),
	}
	ftdi.products[0x6001] = &ProductInfo{Model: "FT232R", Confidence: 0.95}
	ftdi.products[0x6010] = &ProductInfo{Model: "FT2232", Confidence: 0.90}
	ftdi.products[0x6011] = &ProductInfo{Model: "FT4232H", Confidence: 0.90}
	ftdi.products[0x6014] = &ProductInfo{Model: "FT232H", Confidence: 0.90}
	ftdi.products[0x6015] = &ProductInfo{Model: "FT230X", Confidence: 0.90}
	db.vendors[0x0403] = ftdi

	// Prolific (0x067B)
	prolific := &VendorInfo{
		Name:     "Prolific Technology",
		products: make(map[gousb.ID]*ProductInfo),
	}
	prolific.products[0x2303] = &ProductInfo{Model: "PL2303", Confidence: 0.95}
	prolific.products[0x23A3] = &ProductInfo{Model: "PL2303GC", Confidence: 0.90}
	prolific.products[0x23C3] = &ProductInfo{Model: "PL2303GT", Confidence: 0.90}
	db.vendors[0x067B] = prolific

	// Silicon Labs (0x10C4)
	silabs := &VendorInfo{
		Name:     "Silicon Laboratories",
		products: make(map[gousb.ID]*ProductInfo),
	}
	silabs.products[0xEA60] = &ProductInfo{Model: "CP2102/CP2109", Confidence: 0.95}
	silabs.products[0xEA70] = &ProductInfo{Model: "CP2105", Confidence: 0.90}
	silabs.products[0xEA71] = &ProductInfo{Model: "CP2108", Confidence: 0.90}
	db.vendors[0x10C4] = silabs

	// WCH (0x1A86)
	wch := &VendorInfo{
		Name:     "Nanjing Qinheng Microelectronics",
		products: make(map[gousb.ID]*ProductInfo),
	}
	wch.products[0x7523] = &ProductInfo{Model: "CH340", Confidence: 0.95}
	wch.products[0x5523] = &ProductInfo{Model: "CH341", Confidence: 0.90}
	wch.products[0x55D4] = &ProductInfo{Model: "CH9102", Confidence: 0.90}
	db.vendors[0x1A86] = wch
}

// Identify looks up a vendor/product pair. Returns nil info when the
// device is not a known adapter.
func (db *AdapterDatabase) Identify(vendorID, productID gousb.ID) (*VendorInfo, *ProductInfo) {
	vendor, ok := db.vendors[vendorID]
	if !ok {
		return nil, nil
	}
	product, ok := vendor.products[productID]
	if !ok {
		return vendor, nil
	}
	return vendor, product
}

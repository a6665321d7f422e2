package display

// Commands (from the MC2PA8201 datasheet).
const (
	n70NOP      = 0x00
	n70SWRESET  = 0x01
	n70RDDID    = 0x04
	n70SLPIN    = 0x10
	n70SLPOUT   = 0x11
	n70PTLON    = 0x12
	n70NORON    = 0x13
	n70INVOFF   = 0x20
	n70INVON    = 0x21
	n70GAMSET   = 0x26
	n70DISPOFF  = 0x28
	n70DISPON   = 0x29
	n70CASET    = 0x2A
	n70PASET    = 0x2B
	n70RAMWR    = 0x2C
	n70RGBSET   = 0x2D
	n70RAMRD    = 0x2E
	n70PTLAR    = 0x30
	n70VSCRDEF  = 0x33
	n70TEOFF    = 0x34
	n70TEON     = 0x35
	n70MADCTL   = 0x36
	n70VSCRSADD = 0x37
	n70IDMOFF   = 0x38
	n70IDMON    = 0x39
	n70COLMOD   = 0x3A
)

// Memory Data Access Control (MADCTL) bit fields.
const (
	_                        byte = 1 << iota // D0: reserved
	_                                         // D1: reserved
	n70DisplayDataLatchOrder                  // D2: MH
	n70RGBOrder                               // D3: RGB
	n70LineAddressOrder                       // D4: ML
	n70PageColumnOrder                        // D5: MV
	n70ColumnAddressOrder                     // D6: MX
	n70PageAddressOrder                       // D7: MY
)

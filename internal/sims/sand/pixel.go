package sand

// Cell is one packed grid entry:
//
//	bits 24-31  material tag
//	bits 16-23  behavior flags
//	bits  0-15  RGB565 color
type Cell uint32

// Material is the mutually exclusive substance tag of a cell. Although it
// occupies a byte, it is a tag and never a bitmask.
type Material uint8

// Behavior is a set of independent movement flags.
type Behavior uint8

// Color16 is a packed 5-6-5 RGB color.
type Color16 uint16

const (
	MaterialBackground Material = 0x00
	MaterialSand       Material = 0x01
	MaterialFire       Material = 0x02
	MaterialWood       Material = 0x04
	MaterialWater      Material = 0x08
	MaterialConcrete   Material = 0x10
)

const (
	BehaviorFalling Behavior = 1 << iota
	BehaviorBlocking
	BehaviorFluid
	BehaviorSmoke
	BehaviorObject

	// BehaviorStatic is the empty set: the cell neither moves nor blocks.
	BehaviorStatic Behavior = 0
)

const (
	ColorSky      Color16 = 0xB7FF
	ColorSand     Color16 = 0xFF86
	ColorConcrete Color16 = 0xB5B6
	ColorWater    Color16 = 0x235E
	ColorWood     Color16 = 0x8A22
	ColorFire     Color16 = 0xFA20
)

const (
	materialShift = 24
	behaviorShift = 16

	materialMask = 0xFF000000
	behaviorMask = 0x00FF0000
	colorMask    = 0x0000FFFF
)

// Ambient is written into every location a pixel vacates.
const Ambient = Cell(uint32(MaterialBackground)<<materialShift |
	uint32(BehaviorStatic)<<behaviorShift |
	uint32(ColorSky))

// Border is the immovable blocking material surrounding the world.
const Border = Cell(uint32(MaterialConcrete)<<materialShift |
	uint32(BehaviorBlocking)<<behaviorShift |
	uint32(ColorConcrete))

var materialNames = map[Material]string{
	MaterialBackground: "background",
	MaterialSand:       "sand",
	MaterialFire:       "fire",
	MaterialWood:       "wood",
	MaterialWater:      "water",
	MaterialConcrete:   "concrete",
}

// Valid reports whether m is one of the enumerated tags.
func (m Material) Valid() bool {
	_, ok := materialNames[m]
	return ok
}

func (m Material) String() string {
	if name, ok := materialNames[m]; ok {
		return name
	}
	return "unknown"
}

// Has reports whether every flag in f is set in b.
func (b Behavior) Has(f Behavior) bool { return b&f == f }

// Encode packs the three fields into a Cell. Fields are masked into their
// byte ranges and combined with OR.
func Encode(m Material, b Behavior, c Color16) Cell {
	return Cell(uint32(m)<<materialShift&materialMask |
		uint32(b)<<behaviorShift&behaviorMask |
		uint32(c)&colorMask)
}

// Material decodes the material tag. Unrecognised tags decode to background.
func (c Cell) Material() Material {
	m := Material((uint32(c) & materialMask) >> materialShift)
	if !m.Valid() {
		return MaterialBackground
	}
	return m
}

// Behavior decodes the behavior flags.
func (c Cell) Behavior() Behavior {
	return Behavior((uint32(c) & behaviorMask) >> behaviorShift)
}

// Color decodes the RGB565 color.
func (c Cell) Color() Color16 { return Color16(uint32(c) & colorMask) }

// Blocking reports whether the cell stops other pixels from entering it.
func (c Cell) Blocking() bool { return c.Behavior().Has(BehaviorBlocking) }

// Decode splits a cell into its fields.
func Decode(c Cell) (Material, Behavior, Color16) {
	return c.Material(), c.Behavior(), c.Color()
}

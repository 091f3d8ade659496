package order

import "errors"

var (
	ErrInvalidKind     = errors.New("invalid order type")
	ErrInvalidCakeSize = errors.New("invalid cake size")
)

type Kind string

const (
	KindCake    Kind = "cake"
	KindSweet   Kind = "sweet"
	KindWedding Kind = "wedding"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindCake, KindSweet, KindWedding:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", invalid(ErrInvalidKind)
	}
	return kind, nil
}

type CakeSize string

const (
	SizePP        CakeSize = "PP"
	SizeP         CakeSize = "P"
	SizeM         CakeSize = "M"
	SizeG         CakeSize = "G"
	SizeGG        CakeSize = "GG"
	SizeSheet70   CakeSize = "Bolo de Corte 70 fatias"
	SizeSheet100  CakeSize = "Bolo de Corte 100 fatias"
	SizeTiered    CakeSize = "Bolo de Andar"
	SizeCarrot    CakeSize = "Bolo de Cenoura"
	SizeSavoryPie CakeSize = "Torta Salgada"
)

// CakeSizes lists every accepted size in menu order.
var CakeSizes = []CakeSize{
	SizePP, SizeP, SizeM, SizeG, SizeGG,
	SizeSheet70, SizeSheet100,
	SizeTiered, SizeCarrot, SizeSavoryPie,
}

func (s CakeSize) String() string {
	return string(s)
}

func (s CakeSize) IsValid() bool {
	for _, size := range CakeSizes {
		if s == size {
			return true
		}
	}
	return false
}

// IsSheetCake reports the high-capacity sizes sold by slice count.
func (s CakeSize) IsSheetCake() bool {
	return s == SizeSheet70 || s == SizeSheet100
}

func (s CakeSize) Slices() int {
	switch s {
	case SizeSheet70:
		return 70
	case SizeSheet100:
		return 100
	default:
		return 0
	}
}

func NewCakeSize(s string) (CakeSize, error) {
	size := CakeSize(s)
	if !size.IsValid() {
		return "", invalid(ErrInvalidCakeSize)
	}
	return size, nil
}

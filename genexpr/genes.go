package genexpr

import (
	"fmt"
	"strings"
)

// GeneBits is the width of one quadruplet, the unit decoded into a single symbol
const GeneBits = 4

const GeneMask = byte(1<<GeneBits - 1)

// GeneValues maps each quadruplet to the symbol it decodes to.
// 0 through 9 are digits; 10 through 14 are "+", "-", "*", "/", "**". 15 is unassigned.
var GeneValues = map[byte]string{
	0b0000: "0",
	0b0001: "1",
	0b0010: "2",
	0b0011: "3",
	0b0100: "4",
	0b0101: "5",
	0b0110: "6",
	0b0111: "7",
	0b1000: "8",
	0b1001: "9",

	0b1010: "+",
	0b1011: "-",
	0b1100: "*",
	0b1101: "/",
	0b1110: "**",
}

var geneValuesArray [1 << GeneBits]string

var ValueGenes map[string]byte

func init() {
	ValueGenes = make(map[string]byte)
	for gene, value := range GeneValues {
		ValueGenes[value] = gene
		geneValuesArray[gene] = value
	}
}

// SymbolFor returns the symbol a quadruplet decodes to, or "" for unassigned values
func SymbolFor(gene byte) string {
	if gene > GeneMask {
		return ""
	}
	return geneValuesArray[gene]
}

// PackBits packs bits, most significant first, into bytes. The final byte is zero-padded.
func PackBits(bits []bool) []byte {
	bytes := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			bytes[i/8] |= 1 << (7 - i%8)
		}
	}
	return bytes
}

// Decode turns bits into the expression their quadruplets spell out. Bits are packed into
// zero-padded bytes, and each byte's high then low nibble is substituted via SymbolFor.
// The result may very well be malformed.
func Decode(bits []bool) string {
	var buf strings.Builder
	buf.Grow(len(bits) / GeneBits)

	for _, b := range PackBits(bits) {
		buf.WriteString(SymbolFor(b >> GeneBits))
		buf.WriteString(SymbolFor(b & GeneMask))
	}
	return buf.String()
}

// EncodeExpression returns the quadruplet bits spelling out expression
func EncodeExpression(expression string) ([]bool, error) {
	bits := make([]bool, 0, len(expression)*GeneBits)

	for i := 0; i < len(expression); {
		symbol := expression[i : i+1]
		if strings.HasPrefix(expression[i:], "**") {
			symbol = "**"
		}

		gene, isValid := ValueGenes[symbol]
		if !isValid {
			return nil, fmt.Errorf("unrecognized gene value %q at position %d", symbol, i)
		}

		bits = appendGene(bits, gene)
		i += len(symbol)
	}
	return bits, nil
}

func appendGene(bits []bool, gene byte) []bool {
	for j := GeneBits - 1; j >= 0; j-- {
		bits = append(bits, gene&(1<<j) != 0)
	}
	return bits
}

// ParseGeneString reads a string of '0' and '1' characters, ignoring spaces
func ParseGeneString(geneString string) ([]bool, error) {
	geneString = strings.ReplaceAll(geneString, " ", "")

	bits := make([]bool, len(geneString))
	for i, c := range geneString {
		switch c {
		case '1':
			bits[i] = true
		case '0':
		default:
			return nil, fmt.Errorf("unrecognized gene string character %c, expected '1' or '0'", c)
		}
	}
	return bits, nil
}

// FormatGeneString renders bits as '0' and '1' characters, one space between quadruplets
func FormatGeneString(bits []bool) string {
	var buf strings.Builder
	buf.Grow(len(bits) + len(bits)/GeneBits)

	for i, bit := range bits {
		if i > 0 && i%GeneBits == 0 {
			buf.WriteByte(' ')
		}
		if bit {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return buf.String()
}

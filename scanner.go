package ctype

type ItemType int

const (
	ItemUndef ItemType = iota
	ItemWord
	ItemNumber
	ItemPunct
	ItemSpace
	ItemOctet
)

// Scanner partitions a byte slice into items, each a maximal run of one
// character class: words (a letter followed by letters and digits),
// numbers (digits), whitespace, single punctuation bytes, and single
// unclassified bytes (controls and non-ASCII). Every byte of the input
// belongs to exactly one item, so scanning cannot fail.
type Scanner struct {
	data []byte
	pos  int

	itemType  ItemType
	itemBytes []byte
}

func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Next scans for next item. It returns true on successful scanning, and
// false on EOF.
func (s *Scanner) Next() bool {
	s.resetItem()

	if s.pos == len(s.data) {
		return false
	}
	switch c := int(s.data[s.pos]); {
	case IsSpace(c):
		return s.fetchRun(ItemSpace, IsSpace)

	case IsAlpha(c):
		return s.fetchRun(ItemWord, IsAlnum)

	case IsDigit(c):
		return s.fetchRun(ItemNumber, IsDigit)

	case IsPunct(c):
		return s.fetchByte(ItemPunct)

	default:
		return s.fetchByte(ItemOctet)
	}
}

func (s *Scanner) Type() ItemType {
	return s.itemType
}

func (s *Scanner) Bytes() []byte {
	return s.itemBytes
}

func (s *Scanner) resetItem() {
	s.itemType = ItemUndef
	s.itemBytes = nil
}

func (s *Scanner) fetchRun(t ItemType, class func(int) bool) bool {
	i := s.pos
	for s.pos < len(s.data) && class(int(s.data[s.pos])) {
		s.pos++
	}

	s.itemType = t
	s.itemBytes = s.data[i:s.pos]

	return true
}

func (s *Scanner) fetchByte(t ItemType) bool {
	s.itemType = t
	s.itemBytes = s.data[s.pos : s.pos+1]
	s.pos++

	return true
}

// ScanWords iterates over word and number items of data, calling it for
// each one. Iteration stops early if it returns false. ScanWords returns
// the number of items visited.
func ScanWords(data []byte, it func([]byte) bool) (n int) {
	s := Scanner{data: data}

	for s.Next() {
		switch s.Type() {
		case ItemWord, ItemNumber:
			n++
			if !it(s.Bytes()) {
				return n
			}
		}
	}

	return n
}

// Fields splits data around runs of whitespace. It returns subslices of
// data, never copies. Punctuation and unclassified bytes stay inside the
// field they appear in.
func Fields(data []byte) (fields [][]byte) {
	for i := 0; i < len(data); {
		i += SkipSpace(data[i:])
		if i == len(data) {
			break
		}
		j := i
		for j < len(data) && !IsSpace(int(data[j])) {
			j++
		}
		fields = append(fields, data[i:j])
		i = j
	}
	return fields
}

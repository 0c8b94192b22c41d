package piece

const (
	lineFeed       byte = '\n'
	carriageReturn byte = '\r'
)

// Piece names a contiguous range of one buffer chunk and caches the
// offsets of line breaks inside that range. A Piece is never mutated
// in place: edits that split a piece produce new Piece values sharing
// the same underlying buffer bytes.
type Piece struct {
	BufferID   BufferID
	Start      int
	Length     int
	LineStarts []int // offsets relative to Start, one past each terminator
}

// ComputeLineStarts scans buf[start:end] once and returns the offsets,
// relative to start, immediately following each line terminator found.
// A line break is counted once at each LF, once at each standalone CR
// (a CR not immediately followed by LF), and once at each CRLF pair.
func ComputeLineStarts(buf []byte, start, end int) []int {
	if end <= start {
		return nil
	}
	starts := make([]int, 0, (end-start)/48+1)
	for i := start; i < end; i++ {
		switch buf[i] {
		case lineFeed:
			starts = append(starts, i+1-start)
		case carriageReturn:
			if i+1 < end && buf[i+1] == lineFeed {
				starts = append(starts, i+2-start)
				i++
			} else {
				starts = append(starts, i+1-start)
			}
		}
	}
	if len(starts) == 0 {
		return nil
	}
	return starts
}

// NewPiece builds a Piece naming [start, start+length) of buffer id.
// buf must hold exactly that range's bytes (as returned by
// Store.Slice(id, start, length)); the line-start cache is computed
// from buf[0:length].
func NewPiece(buf []byte, id BufferID, start, length int) Piece {
	return Piece{
		BufferID:   id,
		Start:      start,
		Length:     length,
		LineStarts: ComputeLineStarts(buf, 0, length),
	}
}

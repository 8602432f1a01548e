package world

// Fish IDs live in their own range so log lines can't be confused with
// other entity IDs.
//
//	0x00000000: invalid
//	0x20000000 - 0x2FFFFFFF: fish
const firstFishID uint32 = 0x20000000

// idGenerator hands out world-unique fish IDs. IDs are never reused, so a
// respawned fish is a new entity even though it has the same species.
type idGenerator struct {
	next uint32
}

func newIDGenerator() *idGenerator {
	return &idGenerator{next: firstFishID}
}

// Next returns the next fish ID.
func (g *idGenerator) Next() uint32 {
	g.next++
	return g.next
}

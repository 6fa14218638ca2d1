package csvio

// ColumnSchema maps logical fields to their positional index in the source
// exporter's CSV layout. The column order is fixed by the exporting tool;
// keeping every index in one table means a format change touches only this
// file, never the parsing or record-building logic.
type ColumnSchema struct {
	Network      int
	Player       int
	GameID       int
	Stake        int
	Date         int
	Participants int
	Rake         int
	Speed        int
	Result       int
	Flags        int
	Currency     int
	Reentries    int
	Prize        int
	Name         int
	BountyPrize  int
}

// DefaultSchema matches the current tracker export layout.
var DefaultSchema = ColumnSchema{
	Network:      0,
	Player:       1,
	GameID:       2,
	Stake:        3,
	Date:         4,
	Participants: 5,
	Rake:         6,
	Speed:        9,
	Result:       10,
	Flags:        12,
	Currency:     13,
	Reentries:    14,
	Prize:        17,
	Name:         18,
	BountyPrize:  20,
}

// Field returns the column at index idx, or "" when the row is too short.
// Short rows happen on truncated exports and must not panic the importer.
func Field(cols []string, idx int) string {
	if idx < 0 || idx >= len(cols) {
		return ""
	}
	return cols[idx]
}

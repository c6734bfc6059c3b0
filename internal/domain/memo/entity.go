package memo

// StaffMemo is a free-text note about one staff member for a reporting
// period. StoreID is either a venue code or "ALL" for chain-wide notes;
// Month is zero for yearly memos.
type StaffMemo struct {
	ID      int64
	Year    int
	Month   int
	StoreID string
	StaffID int
	Memo    string
}

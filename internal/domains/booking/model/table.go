package model

type TableCategory string

const (
	TableCategoryWindow TableCategory = "window"
	TableCategoryCenter TableCategory = "center"
	TableCategoryCorner TableCategory = "corner"
	TableCategoryBooth  TableCategory = "booth"
)

// Table is a read-only projection of a restaurant table for one slot.
type Table struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Capacity int           `json:"capacity"`
	Category TableCategory `json:"category"`
	Free     bool          `json:"free"`
}

type Availability string

const (
	AvailabilityAvailable    Availability = "available"
	AvailabilityInsufficient Availability = "insufficient"
	AvailabilityOccupied     Availability = "occupied"
)

// Classify places a table in exactly one availability bucket for the party size.
func Classify(table Table, partySize int) Availability {
	switch {
	case !table.Free:
		return AvailabilityOccupied
	case table.Capacity < partySize:
		return AvailabilityInsufficient
	default:
		return AvailabilityAvailable
	}
}

type TableOption struct {
	Table
	Availability Availability `json:"availability"`
}

func (o TableOption) Selectable() bool {
	return o.Availability == AvailabilityAvailable
}

func ClassifyTables(tables []Table, partySize int) []TableOption {
	options := make([]TableOption, len(tables))

	for i, table := range tables {
		options[i] = TableOption{Table: table, Availability: Classify(table, partySize)}
	}

	return options
}

// AvailableTables keeps the tables that are free and large enough.
func AvailableTables(tables []Table, partySize int) []Table {
	available := []Table{}

	for _, table := range tables {
		if Classify(table, partySize) == AvailabilityAvailable {
			available = append(available, table)
		}
	}

	return available
}

// TableRef is the draft's reference to a chosen table. VerifiedFor is the table query
// generation the choice was last checked against.
type TableRef struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Capacity    int           `json:"capacity"`
	Category    TableCategory `json:"category"`
	VerifiedFor int64         `json:"verified_for"`
}

type TableIssue string

const (
	TableIssueNone     TableIssue = ""
	TableIssueOccupied TableIssue = "occupied"
	TableIssueTooSmall TableIssue = "too_small"
)

func (i TableIssue) Message() string {
	switch i {
	case TableIssueOccupied:
		return "no longer available for the chosen time"
	case TableIssueTooSmall:
		return "too small for the party size"
	default:
		return "available"
	}
}

// Revalidate checks a held table against a fresh table list. A table missing from the
// list is treated as occupied.
func Revalidate(ref TableRef, tables []Table, partySize int) TableIssue {
	for _, table := range tables {
		if table.ID != ref.ID {
			continue
		}

		switch Classify(table, partySize) {
		case AvailabilityOccupied:
			return TableIssueOccupied
		case AvailabilityInsufficient:
			return TableIssueTooSmall
		default:
			return TableIssueNone
		}
	}

	return TableIssueOccupied
}

type TableViewStatus string

const (
	TableViewNeedsDetails TableViewStatus = "needs_details"
	TableViewLoading      TableViewStatus = "loading"
	TableViewError        TableViewStatus = "error"
	TableViewEmpty        TableViewStatus = "empty"
	TableViewReady        TableViewStatus = "ready"
)

// TableQuery identifies one table lookup. Generation grows on every schedule change so
// that responses for older inputs can be recognised and dropped.
type TableQuery struct {
	Generation int64  `json:"generation"`
	Date       string `json:"date"`
	TimeSlot   string `json:"time"`
	PartySize  int    `json:"party_size"`
}

type TableView struct {
	Status  TableViewStatus `json:"status"`
	Query   TableQuery      `json:"query"`
	Options []TableOption   `json:"options"`
	Error   string          `json:"error,omitempty"`
}

func (v TableView) Option(tableID string) (TableOption, bool) {
	for _, option := range v.Options {
		if option.ID == tableID {
			return option, true
		}
	}

	return TableOption{}, false
}

func (v TableView) Tables() []Table {
	tables := make([]Table, len(v.Options))
	for i, option := range v.Options {
		tables[i] = option.Table
	}

	return tables
}

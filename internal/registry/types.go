package registry

// Naming convention of a challenge workspace.
const (
	YearPrefix = "y"
	DayPrefix  = "d"
	Ext        = ".go"

	// ModFile is the generated per-year registry inside each year directory.
	ModFile = "mod" + Ext
	// RegistryFile is the generated top-level registry at the workspace root.
	RegistryFile = "auto_import" + Ext
)

// State is the scaffolding state of a day file.
type State int

const (
	Unfilled State = iota // file is zero bytes long
	Filled
)

func (s State) String() string {
	if s == Unfilled {
		return "unfilled"
	}
	return "filled"
}

// Day is a d<digits>.go file inside a year directory.
type Day struct {
	ID   int    // e.g., 7
	Name string // file stem, e.g., "d7"; also the Go type name
	Path string // path to the file
	Size int64  // size at scan time
}

// State derives the scaffolding state from the size observed at scan time.
func (d Day) State() State {
	if d.Size == 0 {
		return Unfilled
	}
	return Filled
}

// Year is a y<digits> directory under the workspace root.
type Year struct {
	ID   int    // e.g., 2023
	Name string // directory name, e.g., "y2023"; also the Go package name
	Dir  string // path to the directory
	Days []Day  // sorted by ID
}

// Day returns the day with the given ID.
func (y Year) Day(id int) (Day, bool) {
	for _, d := range y.Days {
		if d.ID == id {
			return d, true
		}
	}
	return Day{}, false
}

// Layout is a full scan of a workspace root.
type Layout struct {
	Root  string // absolute path to the workspace root
	Years []Year // sorted by ID
}

// Year returns the year with the given ID.
func (l *Layout) Year(id int) (Year, bool) {
	for _, y := range l.Years {
		if y.ID == id {
			return y, true
		}
	}
	return Year{}, false
}

// DayCount returns the number of days across all years.
func (l *Layout) DayCount() int {
	n := 0
	for _, y := range l.Years {
		n += len(y.Days)
	}
	return n
}

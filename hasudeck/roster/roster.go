package roster

// Static roster tables for the school idol club. Loaded once at process start
// and never written again, so every lookup is safe for concurrent use.

// Character is a single roster entry. Generation is the term number the
// character enrolled with; Unit is empty for members without a unit.
type Character struct {
	Name       string
	Generation int
	Unit       string
}

// Unit names
const (
	UnitCerisesBouquet = "スリーズブーケ"
	UnitDollchestra    = "DOLLCHESTRA"
	UnitMiracraPark    = "みらくらぱーく!"
	UnitEdelNote       = "Edel Note"
)

// Pseudo-characters used as slot labels. Neither is a roster member.
const (
	FreeLabel   = "Free"
	FriendLabel = "Friend"
)

// Roster is the full character list in canonical order. The order is part of
// the UI contract (selection lists follow it), so entries must not be
// reordered. The first entry is the sole 101期 member.
var Roster = []Character{
	{Name: "大賀美沙知", Generation: 101},
	{Name: "乙宗梢", Generation: 102, Unit: UnitCerisesBouquet},
	{Name: "夕霧綴理", Generation: 102, Unit: UnitDollchestra},
	{Name: "藤島慈", Generation: 102, Unit: UnitMiracraPark},
	{Name: "日野下花帆", Generation: 103, Unit: UnitCerisesBouquet},
	{Name: "村野さやか", Generation: 103, Unit: UnitDollchestra},
	{Name: "大沢瑠璃乃", Generation: 103, Unit: UnitMiracraPark},
	{Name: "百生吟子", Generation: 104, Unit: UnitCerisesBouquet},
	{Name: "徒町小鈴", Generation: 104, Unit: UnitDollchestra},
	{Name: "安養寺姫芽", Generation: 104, Unit: UnitMiracraPark},
	{Name: "桂城泉", Generation: 105, Unit: UnitEdelNote},
	{Name: "セラス柳田リリエンフェルト", Generation: 105, Unit: UnitEdelNote},
}

var byName = make(map[string]Character, len(Roster))

func init() {
	for _, c := range Roster {
		byName[c.Name] = c
	}
}

// Names returns the roster names in canonical order. The returned slice is a
// fresh copy and safe for the caller to reorder.
func Names() []string {
	names := make([]string, len(Roster))
	for i, c := range Roster {
		names[i] = c.Name
	}
	return names
}

// Lookup returns the roster entry for name.
func Lookup(name string) (Character, bool) {
	c, ok := byName[name]
	return c, ok
}

// GenerationOf returns the term number for name, or false for names outside
// the roster (including the Free/Friend labels).
func GenerationOf(name string) (int, bool) {
	c, ok := byName[name]
	if !ok {
		return 0, false
	}
	return c.Generation, true
}

// UnitOf returns the unit name for name, or false if the character has no
// unit or is not a roster member.
func UnitOf(name string) (string, bool) {
	c, ok := byName[name]
	if !ok || c.Unit == "" {
		return "", false
	}
	return c.Unit, true
}

// Members returns the names of a generation's members in roster order.
func Members(generation int) []string {
	var names []string
	for _, c := range Roster {
		if c.Generation == generation {
			names = append(names, c.Name)
		}
	}
	return names
}

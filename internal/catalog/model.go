package catalog

// CardSet is one authored set document: a set code, a display name and the
// cards printed in it. A document is immutable once loaded.
type CardSet struct {
	Set   string `json:"set"`
	Desc  string `json:"desc"`
	Cards []Card `json:"cards"`
}

// Card is a single printed card. A card carrying a Ref borrows its gameplay
// data (attacks, HP, abilities, types) from another printing; Num, Title and
// Alt always belong to the entry itself.
type Card struct {
	Num         string            `json:"num"`
	Name        string            `json:"name,omitempty"`
	Title       string            `json:"title,omitempty"`
	Type        string            `json:"type,omitempty"`
	Subtype     string            `json:"subtype,omitempty"`
	HP          string            `json:"hp,omitempty"`
	Stage       string            `json:"stage,omitempty"`
	EvolveFrom  string            `json:"evolveFrom,omitempty"`
	Ability     *Ability          `json:"ability,omitempty"`
	Attacks     []Attack          `json:"attack,omitempty"`
	TrainerText []string          `json:"trainerText,omitempty"`
	Weak        string            `json:"weak,omitempty"`
	Resist      string            `json:"resist,omitempty"`
	Retreat     int               `json:"retreat,omitempty"`
	Img         map[string]string `json:"img,omitempty"` // locale -> image path
	Alt         bool              `json:"alt,omitempty"`
	Ref         *CardRef          `json:"ref,omitempty"`
}

// CardRef points at the printing a card borrows its data from. From is a
// provenance note shown to the user; it plays no part in resolution.
type CardRef struct {
	Set  string `json:"set,omitempty"`
	Num  string `json:"num"`
	From string `json:"from,omitempty"`
}

// Ability is a Pokémon power printed on the card.
type Ability struct {
	Name string `json:"name"`
	Text string `json:"text,omitempty"`
}

// Attack is one attack line: energy cost, damage and rules text.
type Attack struct {
	Name   string   `json:"name"`
	Cost   []string `json:"cost,omitempty"`
	Damage string   `json:"damage,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// NumValue returns the numeric value of a printed card number, so "047" and
// "47" compare equal. Parsing stops at the first non-digit ("12a" -> 12);
// a number with no leading digits yields -1 and sorts first.
func NumValue(num string) int {
	n := -1
	for _, r := range num {
		if r < '0' || r > '9' {
			break
		}
		if n < 0 {
			n = 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

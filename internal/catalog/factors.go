package catalog

// FactorType determines the input shape of a factor's items and which
// scorer applies to it.
type FactorType string

const (
	TypeRating     FactorType = "rating"
	TypeRating13   FactorType = "rating-1-3"
	TypeRating2D   FactorType = "rating-2d"
	TypePercentage FactorType = "percentage"
	TypeRadio      FactorType = "radio"
)

// IsRating reports whether inputs of this type are ratings (linear or 2D).
func (t FactorType) IsRating() bool {
	return t == TypeRating || t == TypeRating13 || t == TypeRating2D
}

// WeightKey selects how a factor's weight table is keyed.
type WeightKey int

const (
	KeyByID WeightKey = iota
	// KeyByName tables are keyed by the item's display name ("High",
	// "Outsourcing", "Support").
	KeyByName
)

// Item is one question of a factor.
type Item struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	// Default is the neutral input: the rating applied when the item is
	// missing (both axes for rating-2d) or the documented percentage share.
	Default float64 `json:"default" yaml:"default"`
}

// Factor describes one of the ten design factors.
type Factor struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Type        FactorType `json:"type" yaml:"type"`
	Stage       int        `json:"stage" yaml:"stage"`
	WeightKey   WeightKey  `json:"-" yaml:"-"`
	Items       []Item     `json:"items" yaml:"items"`
}

// Key returns the weight-table key for item.
func (f Factor) Key(item Item) string {
	if f.WeightKey == KeyByName {
		return item.Name
	}
	return item.ID
}

// Item finds an item by id.
func (f Factor) Item(id string) (Item, bool) {
	for _, it := range f.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func (f Factor) clone() Factor {
	f.Items = append([]Item(nil), f.Items...)
	return f
}

func ratingItems(def float64, pairs ...string) []Item {
	items := make([]Item, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, Item{ID: pairs[i], Name: pairs[i+1], Default: def})
	}
	return items
}

var factors = []Factor{
	{
		ID: "df1", Name: "Enterprise Strategy", Stage: 1, Type: TypeRating,
		Description: "Rate the importance (1-5) of each strategy archetype.",
		Items: ratingItems(3,
			"growth", "Growth/Acquisition",
			"innovation", "Innovation/Differentiation",
			"cost", "Cost Leadership",
			"client", "Client Service/Stability",
		),
	},
	{
		ID: "df2", Name: "Enterprise Goals", Stage: 1, Type: TypeRating,
		Description: "Rate the importance (1-5) of each enterprise goal.",
		Items: ratingItems(3,
			"eg01", "EG01 Portfolio of competitive products and services",
			"eg02", "EG02 Managed business risk",
			"eg03", "EG03 Compliance with external laws and regulations",
			"eg04", "EG04 Quality of financial information",
			"eg05", "EG05 Customer-oriented service culture",
			"eg06", "EG06 Business-service continuity and availability",
			"eg07", "EG07 Quality of management information",
			"eg08", "EG08 Optimisation of internal business process functionality",
			"eg09", "EG09 Optimisation of business process costs",
			"eg10", "EG10 Staff skills, motivation and productivity",
			"eg11", "EG11 Compliance with internal policies",
			"eg12", "EG12 Managed digital transformation programmes",
			"eg13", "EG13 Product and business innovation",
		),
	},
	{
		ID: "df3", Name: "Risk Profile", Stage: 1, Type: TypeRating2D,
		Description: "Assess the impact (1-5) and likelihood (1-5) of I&T risk scenarios.",
		Items: ratingItems(3,
			"risk01", "IT investment decision making",
			"risk02", "Program & projects life cycle management",
			"risk03", "IT cost & oversight",
			"risk04", "IT expertise, skills & behavior",
			"risk05", "Enterprise/IT architecture",
			"risk06", "IT operational infrastructure incidents",
			"risk07", "Unauthorized actions",
			"risk08", "Software adoption/usage problems",
			"risk09", "Hardware incidents",
			"risk10", "Software failures",
			"risk11", "Logical attacks (hacking, malware, etc.)",
			"risk12", "Third-party/supplier incidents",
			"risk13", "Noncompliance",
			"risk14", "Geopolitical Issues",
			"risk15", "Industrial action",
			"risk16", "Acts of nature",
			"risk17", "Technology-based innovation",
			"risk18", "Environmental",
			"risk19", "Data & information management",
		),
	},
	{
		ID: "df4", Name: "I&T-Related Issues", Stage: 1, Type: TypeRating13,
		Description: "Rate the importance (1-3) of common I&T-related issues.",
		Items: ratingItems(2,
			"issue01", "Frustration between different IT entities across the organization because of a perception of low contribution to business value",
			"issue02", "Frustration between business departments (i.e., the IT customer) and the IT department because of failed initiatives or a perception of low contribution to business value",
			"issue03", "Significant I&T-related incidents, such as data loss, security breaches, project failure and application errors, linked to IT",
			"issue04", "Service delivery problems by the IT outsourcer(s)",
			"issue05", "Failures to meet IT-related regulatory or contractual requirements",
			"issue06", "Regular audit findings or other assessment reports about poor IT performance or reported IT quality or service problems",
			"issue07", "Substantial hidden and rogue IT spending, that is, I&T spending by user departments outside the control of the normal I&T investment decision mechanisms and approved budgets",
			"issue08", "Duplications or overlaps between various initiatives, or other forms of wasted resources",
			"issue09", "Insufficient IT resources, staff with inadequate skills or staff burnout/dissatisfaction",
			"issue10", "IT-enabled changes or projects frequently failing to meet business needs and delivered late or over budget",
			"issue11", "Reluctance by board members, executives or senior management to engage with IT, or a lack of committed business sponsorship for IT",
			"issue12", "Complex IT operating model and/or unclear decision mechanisms for IT-related decisions",
			"issue13", "Excessively high cost of IT",
			"issue14", "Obstructed or failed implementation of new initiatives or innovations caused by the current IT architecture and systems",
			"issue15", "Gap between business and technical knowledge, which leads to business users and information and/or technology specialists speaking different languages",
			"issue16", "Regular issues with data quality and integration of data across various sources",
			"issue17", "High level of end-user computing, creating (among other problems) a lack of oversight and quality control over the applications that are being developed and put in operation",
			"issue18", "Business departments implementing their own information solutions with little or no involvement of the enterprise IT department",
			"issue19", "Ignorance of and/or noncompliance with privacy regulations",
			"issue20", "Inability to exploit new technologies or innovate using I&T",
		),
	},
	{
		ID: "df5", Name: "Threat Landscape", Stage: 2, Type: TypePercentage, WeightKey: KeyByName,
		Description: "Distribute 100% between threat levels.",
		Items: []Item{
			{ID: "df5_high", Name: "High", Default: 33},
			{ID: "df5_normal", Name: "Normal", Default: 67},
		},
	},
	{
		ID: "df6", Name: "Compliance Requirements", Stage: 2, Type: TypePercentage,
		Description: "Distribute 100% between compliance levels.",
		Items: []Item{
			{ID: "df6_high", Name: "High", Default: 0},
			{ID: "df6_normal", Name: "Normal", Default: 100},
			{ID: "df6_low", Name: "Low", Default: 0},
		},
	},
	{
		ID: "df7", Name: "Role of IT", Stage: 2, Type: TypeRating, WeightKey: KeyByName,
		Description: "Rate the importance (1-5) of each role of IT.",
		Items: ratingItems(3,
			"support", "Support",
			"factory", "Factory",
			"turnaround", "Turnaround",
			"strategic", "Strategic",
		),
	},
	{
		ID: "df8", Name: "Sourcing Model for IT", Stage: 2, Type: TypePercentage, WeightKey: KeyByName,
		Description: "Distribute 100% between sourcing models.",
		Items: []Item{
			{ID: "outsourcing", Name: "Outsourcing", Default: 33},
			{ID: "cloud", Name: "Cloud", Default: 33},
			{ID: "insourced", Name: "Insourced", Default: 34},
		},
	},
	{
		ID: "df9", Name: "IT Implementation Methods", Stage: 2, Type: TypePercentage,
		Description: "Distribute 100% between implementation methods.",
		Items: []Item{
			{ID: "agile", Name: "Agile", Default: 15},
			{ID: "devops", Name: "DevOps", Default: 10},
			{ID: "traditional", Name: "Traditional", Default: 75},
		},
	},
	{
		ID: "df10", Name: "Technology Adoption Strategy", Stage: 2, Type: TypePercentage,
		Description: "Distribute 100% between adoption strategies.",
		Items: []Item{
			{ID: "first_mover", Name: "First Mover", Default: 15},
			{ID: "follower", Name: "Follower", Default: 70},
			{ID: "slow_adopter", Name: "Slow Adopter", Default: 15},
		},
	},
}

// Factors returns all ten descriptors in df1..df10 order.
func Factors() []Factor {
	out := make([]Factor, len(factors))
	for i, f := range factors {
		out[i] = f.clone()
	}
	return out
}

// LookupFactor finds a factor descriptor by id.
func LookupFactor(id string) (Factor, bool) {
	for _, f := range factors {
		if f.ID == id {
			return f.clone(), true
		}
	}
	return Factor{}, false
}

// FactorIDs returns df1..df10.
func FactorIDs() []string {
	ids := make([]string, len(factors))
	for i, f := range factors {
		ids[i] = f.ID
	}
	return ids
}

// InitialScopeFactorIDs returns the stage-one factors, df1..df4.
func InitialScopeFactorIDs() []string {
	var ids []string
	for _, f := range factors {
		if f.Stage == 1 {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

package tier

import "slices"

// Group names of the default catalog.
const (
	GroupPremium     = "Tier 1 Premium"
	GroupTier2       = "Tier 2"
	GroupSpeculative = "Especulativo"
)

// DefaultSource credits the methodology behind the default scale.
const DefaultSource = "Fonte: PV Tech. A metodologia de classificação de bancabilidade é baseada na análise da PV ModuleTech Bankability Ratings, " +
	"um relatório que a organização global lança trimestralmente para avaliar a saúde financeira e tecnológica de fabricantes de módulos solares para investidores."

var defaultLevels = []Level{
	{
		ID:          "AAA",
		Description: "A mais alta classificação. Representa entidades com capacidade financeira extremamente forte para honrar compromissos. O risco de inadimplência é considerado o mais baixo possível.",
		Color:       "#15803d",
	},
	{
		ID:          "AA",
		Description: "Capacidade financeira muito forte. Entidades com um risco de crédito muito baixo, diferenciando-se da classificação AAA por uma margem de segurança marginalmente menor. Ainda assim, são consideradas de altíssima qualidade.",
		Color:       "#22c55e",
	},
	{
		ID:          "A",
		Description: "Forte capacidade financeira, mas com alguma suscetibilidade a condições económicas adversas. O risco de inadimplência permanece baixo, representando um investimento seguro e de alta qualidade.",
		Color:       "#86efac",
	},
	{
		ID:          "BBB",
		Description: "Capacidade financeira adequada. Representa o último degrau do \"grau de investimento\". No entanto, condições económicas adversas têm maior probabilidade de enfraquecer a sua capacidade de cumprir compromissos.",
		Color:       "#f59e0b",
	},
	{
		ID:          "BB",
		Description: "Grau especulativo. Apresenta vulnerabilidade financeira no curto prazo, especialmente diante de condições económicas desfavoráveis. Enfrenta incertezas que podem afetar a sua capacidade de pagamento.",
		Color:       "#facc15",
	},
	{
		ID:          "B",
		Description: "Altamente especulativo. A capacidade de honrar compromissos financeiros é vulnerável e depende de condições de mercado favoráveis. Um risco de inadimplência significativo está presente.",
		Color:       "#fde047",
	},
	{
		ID:          "CCC+",
		Description: "Risco substancial. A entidade encontra-se vulnerável e a sua capacidade de cumprir os compromissos depende inteiramente de condições económicas e de mercado favoráveis. A inadimplência é uma possibilidade real.",
		Color:       "#991b1b",
	},
	{
		ID:          "CCC",
		Description: "Risco extremamente alto. Atualmente vulnerável a inadimplência e dependente de condições favoráveis para cumprir os seus compromissos. A probabilidade de incumprimento é elevada.",
		Color:       "#b91c1c",
	},
	{
		ID:          "CC+",
		Description: "Nível de risco muito alto, com sérias dúvidas sobre a viabilidade. O incumprimento de alguma das suas obrigações financeiras é uma forte probabilidade.",
		Color:       "#dc2626",
	},
	{
		ID:          "CC",
		Description: "Incumprimento altamente provável. A saúde financeira é extremamente frágil. A entidade já pode ter falhado alguns pagamentos ou está perto de o fazer.",
		Color:       "#ef4444",
	},
	{
		ID:          "C+",
		Description: "Em processo de incumprimento ou perto dele. Esta classificação indica que a entidade está em processo de falência ou já cessou as suas operações, com pouca perspectiva de recuperação.",
		Color:       "#f87171",
	},
	{
		ID:          "C",
		Description: "Em incumprimento (default). A entidade já falhou em cumprir as suas obrigações financeiras. Esta é a classificação de risco mais baixa, indicando insolvência ou liquidação.",
		Color:       "#fca5a5",
	},
}

var defaultGroups = []Group{
	{Name: GroupPremium, LabelLines: []string{"Tier 1", "Premium"}, StartLevel: 0, EndLevel: 3, Color: "#15803d"},
	{Name: GroupTier2, LabelLines: []string{"Tier 2"}, StartLevel: 3, EndLevel: 6, Color: "#f59e0b"},
	{Name: GroupSpeculative, LabelLines: []string{"Especulativo"}, StartLevel: 6, EndLevel: 12, Color: "#dc2626"},
}

var defaultBrands = map[string][]string{
	GroupPremium:     {"Jinko Solar", "LONGi", "Trina Solar", "JA Solar", "Canadian Solar", "Risen Energy"},
	GroupTier2:       {"First Solar", "Qcells", "Maxeon", "REC Group", "Meyer Burger", "Silfab"},
	GroupSpeculative: {"Phono Solar", "Seraphim", "Suntech", "Axitec", "Talesun", "ZNSHINE"},
}

// Default returns a fresh copy of the built-in catalog. Callers may modify
// the returned value without affecting later calls.
func Default() Catalog {
	groups := make([]Group, len(defaultGroups))
	for i, g := range defaultGroups {
		g.LabelLines = slices.Clone(g.LabelLines)
		groups[i] = g
	}

	brands := make(map[string][]Brand, len(defaultBrands))
	for group, names := range defaultBrands {
		list := make([]Brand, len(names))
		for i, n := range names {
			list[i] = Brand{Name: n}
		}
		brands[group] = list
	}

	return Catalog{
		Source: DefaultSource,
		Levels: slices.Clone(defaultLevels),
		Groups: groups,
		Brands: brands,
	}
}

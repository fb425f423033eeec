package caption

import (
	"strings"

	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/language"
)

// TemplateType selects the lead-in sentence of a caption.
type TemplateType string

const (
	Featured     TemplateType = "featured"
	AlsoFeatured TemplateType = "also_featured"
	ModelWears   TemplateType = "model_wears"
	ModelRight   TemplateType = "model_right"
	ModelLeft    TemplateType = "model_left"
	ModelMiddle  TemplateType = "model_middle"
	FeaturedTop  TemplateType = "featured_top"
	TopModel     TemplateType = "top_model"
	Talent       TemplateType = "talent"
	TalentRight  TemplateType = "talent_right"
	TalentLeft   TemplateType = "talent_left"
	TopTalent    TemplateType = "top_talent"
)

// TemplateTypes lists every template type in display order.
var TemplateTypes = []TemplateType{
	Featured, AlsoFeatured, ModelWears, ModelRight, ModelLeft, ModelMiddle,
	FeaturedTop, TopModel, Talent, TalentRight, TalentLeft, TopTalent,
}

var templates = map[language.Code]map[TemplateType]string{
	language.EN: {
		Featured:     "Featured In This Image:",
		AlsoFeatured: "Also Featured In This Image:",
		ModelWears:   "Model wears",
		ModelRight:   "Model (right) wears",
		ModelLeft:    "Model (left) wears",
		ModelMiddle:  "Model (middle) wears",
		FeaturedTop:  "Featured In Top Image:",
		TopModel:     "Top Image: Model wears",
		Talent:       "[Talent name] wears",
		TalentRight:  "[Talent name] (right) wears",
		TalentLeft:   "[Talent name] (left) wears",
		TopTalent:    "Top Image: [Talent name] wears",
	},
	language.FR: {
		Featured:     "Présenté Dans Cette Image:",
		AlsoFeatured: "Également Présenté Dans Cette Image:",
		ModelWears:   "Le mannequin porte",
		ModelRight:   "Le mannequin (à droite) porte",
		ModelLeft:    "Le mannequin (à gauche) porte",
		ModelMiddle:  "Le mannequin (au milieu) porte",
		FeaturedTop:  "Présenté Dans L'Image Du Haut:",
		TopModel:     "Image Du Haut: Le mannequin porte",
		Talent:       "[Nom du talent] porte",
		TalentRight:  "[Nom du talent] (à droite) porte",
		TalentLeft:   "[Nom du talent] (à gauche) porte",
		TopTalent:    "Image Du Haut: [Nom du talent] porte",
	},
	language.JP: {
		Featured:     "画像に登場するアイテム：",
		AlsoFeatured: "画像に登場する他のアイテム：",
		ModelWears:   "モデル着用：",
		ModelRight:   "モデル（右）着用：",
		ModelLeft:    "モデル（左）着用：",
		ModelMiddle:  "モデル（中央）着用：",
		FeaturedTop:  "上の画像に登場するアイテム：",
		TopModel:     "上の画像：モデル着用：",
		Talent:       "[タレント名]着用：",
		TalentRight:  "[タレント名]（右）着用：",
		TalentLeft:   "[タレント名]（左）着用：",
		TopTalent:    "上の画像：[タレント名]着用：",
	},
	language.ZH: {
		Featured:     "图中精选单品：",
		AlsoFeatured: "图中其他精选单品：",
		ModelWears:   "模特穿着：",
		ModelRight:   "模特（右）穿着：",
		ModelLeft:    "模特（左）穿着：",
		ModelMiddle:  "模特（中）穿着：",
		FeaturedTop:  "上图精选单品：",
		TopModel:     "上图：模特穿着：",
		Talent:       "[艺人姓名]穿着：",
		TalentRight:  "[艺人姓名]（右）穿着：",
		TalentLeft:   "[艺人姓名]（左）穿着：",
		TopTalent:    "上图：[艺人姓名]穿着：",
	},
}

// ParseTemplateType validates s. An empty string selects Featured.
func ParseTemplateType(s string) (TemplateType, bool) {
	if s == "" {
		return Featured, true
	}
	t := TemplateType(s)
	_, ok := templates[language.EN][t]
	return t, ok
}

// IsTalent reports whether t's lead-in carries a talent placeholder.
func (t TemplateType) IsTalent() bool {
	return strings.Contains(string(t), "talent")
}

// Lead returns the lead-in for t in code, with the talent placeholder
// replaced when t is a talent template and talentName is set.
func Lead(t TemplateType, code language.Code, talentName string) (string, bool) {
	lead, ok := templates[code][t]
	if !ok {
		return "", false
	}
	if talentName == "" || !t.IsTalent() {
		return lead, true
	}
	rule, ok := language.RuleFor(code)
	if !ok {
		return lead, true
	}
	return strings.ReplaceAll(lead, rule.TalentPlaceholder, talentName), true
}

// Templates returns a copy of the template table keyed by language.
func Templates() map[language.Code]map[TemplateType]string {
	out := make(map[language.Code]map[TemplateType]string, len(templates))
	for code, byType := range templates {
		m := make(map[TemplateType]string, len(byType))
		for t, s := range byType {
			m[t] = s
		}
		out[code] = m
	}
	return out
}

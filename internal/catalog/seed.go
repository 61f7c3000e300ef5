package catalog

import "github.com/Veraticus/bottleshop/internal/model"

func origin(kind, en, ne string, subs ...string) model.OriginType {
	o := model.OriginType{
		Type:         kind,
		DisplayLabel: model.LocalizedText{EN: en, NE: ne},
	}
	for _, s := range subs {
		o.SubCategories = append(o.SubCategories, model.SubCategory{Name: s})
	}
	return o
}

// Seed returns the demo storefront catalog used by `catalog seed` and the
// browser when the store is empty.
func Seed() *Document {
	domestic := func(subs ...string) model.OriginType {
		return origin(model.OriginDomestic, "Domestic", "स्वदेशी", subs...)
	}
	imported := func(subs ...string) model.OriginType {
		return origin(model.OriginImported, "Imported", "आयातित", subs...)
	}

	return &Document{
		Categories: []model.Category{
			{
				ID:          "whisky",
				DisplayName: model.LocalizedText{EN: "Whisky", NE: "व्हिस्की"},
				IconRef:     "whisky",
				ColorToken:  "amber",
				OriginTypes: []model.OriginType{
					domestic(),
					imported("single malt", "blended", "bourbon"),
				},
			},
			{
				ID:          "vodka",
				DisplayName: model.LocalizedText{EN: "Vodka", NE: "भोड्का"},
				IconRef:     "vodka",
				ColorToken:  "ice",
				OriginTypes: []model.OriginType{
					domestic("flavoured"),
					imported(),
				},
			},
			{
				ID:          "rum",
				DisplayName: model.LocalizedText{EN: "Rum", NE: "रम"},
				IconRef:     "rum",
				ColorToken:  "amber",
				OriginTypes: []model.OriginType{
					domestic(),
				},
			},
			{
				ID:          "wine",
				DisplayName: model.LocalizedText{EN: "Wine", NE: "वाइन"},
				IconRef:     "wine",
				ColorToken:  "berry",
				OriginTypes: []model.OriginType{
					domestic(),
					imported("red", "white", "sparkling"),
				},
			},
			{
				ID:          "beer",
				DisplayName: model.LocalizedText{EN: "Beer", NE: "बियर"},
				IconRef:     "beer",
				ColorToken:  "gold",
				OriginTypes: []model.OriginType{
					domestic("lager", "strong"),
				},
			},
			{
				ID:          "mixers",
				DisplayName: model.LocalizedText{EN: "Mixers", NE: "मिक्सर"},
				IconRef:     "mixers",
				ColorToken:  "muted",
			},
		},
		Products: []model.Product{
			{ID: "wh-001", Name: "Khukri Spiced Whisky", CategoryID: "whisky", OriginType: model.OriginDomestic, PricePaisa: 210000, VolumeML: 750},
			{ID: "wh-002", Name: "Highland Cask 12", CategoryID: "whisky", OriginType: model.OriginImported, SubCategory: "single malt", PricePaisa: 1450000, VolumeML: 700},
			{ID: "wh-003", Name: "Royal Blend Reserve", CategoryID: "whisky", OriginType: model.OriginImported, SubCategory: "blended", PricePaisa: 620000, VolumeML: 750},
			{ID: "wh-004", Name: "Kentucky Oak", CategoryID: "whisky", OriginType: model.OriginImported, SubCategory: "bourbon", PricePaisa: 780000, VolumeML: 750},
			{ID: "vo-001", Name: "Ruslan Citron", CategoryID: "vodka", OriginType: model.OriginDomestic, SubCategory: "flavoured", PricePaisa: 165000, VolumeML: 750},
			{ID: "vo-002", Name: "Nordic Frost", CategoryID: "vodka", OriginType: model.OriginImported, PricePaisa: 540000, VolumeML: 700},
			{ID: "ru-001", Name: "Old Durbar Dark Rum", CategoryID: "rum", OriginType: model.OriginDomestic, PricePaisa: 185000, VolumeML: 750},
			{ID: "wi-001", Name: "Hill Country Red", CategoryID: "wine", OriginType: model.OriginDomestic, PricePaisa: 120000, VolumeML: 750},
			{ID: "wi-002", Name: "Bordeaux Rouge", CategoryID: "wine", OriginType: model.OriginImported, SubCategory: "red", PricePaisa: 450000, VolumeML: 750},
			{ID: "wi-003", Name: "Prosecco Brut", CategoryID: "wine", OriginType: model.OriginImported, SubCategory: "sparkling", PricePaisa: 390000, VolumeML: 750},
			{ID: "be-001", Name: "Everest Lager", CategoryID: "beer", OriginType: model.OriginDomestic, SubCategory: "lager", PricePaisa: 45000, VolumeML: 650},
			{ID: "be-002", Name: "Gorkha Strong", CategoryID: "beer", OriginType: model.OriginDomestic, SubCategory: "strong", PricePaisa: 52000, VolumeML: 650},
			{ID: "mx-001", Name: "Tonic Water", CategoryID: "mixers", PricePaisa: 15000, VolumeML: 300},
		},
	}
}

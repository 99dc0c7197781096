package trend

import "github.com/sells-group/geoindex/internal/model"

type templateKey struct {
	kind     model.IndexKind
	category model.Category
}

type template struct {
	headline  string
	narrative string
}

const (
	unavailableHeadline  = "Analysis not available for this index"
	unavailableNarrative = "Trend analysis is not available for this index."
	noChangeHeadline     = "No significant change"
)

// templates holds one entry per supported kind and category. NDBI and BSI read
// increases as pressure on land cover rather than improvement.
var templates = map[templateKey]template{
	{model.KindVegetation, model.CategoryLargeDecrease}: {
		"Significant decrease in vegetation",
		"Significant downward trend in vegetation, indicating possible deforestation or land degradation.",
	},
	{model.KindVegetation, model.CategorySmallDecrease}: {
		"Slight decrease in vegetation",
		"Slight downward trend in vegetation, suggesting possible gradual degradation.",
	},
	{model.KindVegetation, model.CategoryNoChange}: {
		noChangeHeadline,
		"No significant change in vegetation cover over the analysed period.",
	},
	{model.KindVegetation, model.CategorySmallIncrease}: {
		"Slight increase in vegetation",
		"Slight upward trend in vegetation, suggesting a gradual improvement of plant cover.",
	},
	{model.KindVegetation, model.CategoryLargeIncrease}: {
		"Significant increase in vegetation",
		"Significant upward trend in vegetation, indicating possible reforestation or revegetation.",
	},

	{model.KindWater, model.CategoryLargeDecrease}: {
		"Significant decrease in water surfaces",
		"Significant decrease in water surfaces, indicating possible drought or drying of water bodies.",
	},
	{model.KindWater, model.CategorySmallDecrease}: {
		"Slight decrease in water surfaces",
		"Slight decrease in water surfaces, suggesting a gradual reduction of water resources.",
	},
	{model.KindWater, model.CategoryNoChange}: {
		noChangeHeadline,
		"No significant change in water surfaces over the analysed period.",
	},
	{model.KindWater, model.CategorySmallIncrease}: {
		"Slight increase in water surfaces",
		"Slight increase in water surfaces, suggesting a gradual improvement of water resources.",
	},
	{model.KindWater, model.CategoryLargeIncrease}: {
		"Significant increase in water surfaces",
		"Significant increase in water surfaces, indicating possible flooding or expansion of water bodies.",
	},

	{model.KindMoisture, model.CategoryLargeDecrease}: {
		"Significant decrease in moisture",
		"Significant decrease in vegetation moisture, indicating possible water stress or drought.",
	},
	{model.KindMoisture, model.CategorySmallDecrease}: {
		"Slight decrease in moisture",
		"Slight decrease in vegetation moisture, suggesting the onset of water stress.",
	},
	{model.KindMoisture, model.CategoryNoChange}: {
		noChangeHeadline,
		"No significant change in vegetation moisture over the analysed period.",
	},
	{model.KindMoisture, model.CategorySmallIncrease}: {
		"Slight increase in moisture",
		"Slight increase in vegetation moisture, suggesting a gradual improvement of water conditions.",
	},
	{model.KindMoisture, model.CategoryLargeIncrease}: {
		"Significant increase in moisture",
		"Significant increase in vegetation moisture, indicating improved water conditions.",
	},

	{model.KindBuiltUp, model.CategoryLargeDecrease}: {
		"Significant decrease in built-up areas",
		"Significant decrease in built-up areas, indicating possible demolition or renaturation.",
	},
	{model.KindBuiltUp, model.CategorySmallDecrease}: {
		"Slight decrease in built-up areas",
		"Slight decrease in built-up areas, suggesting a gradual reduction of infrastructure.",
	},
	{model.KindBuiltUp, model.CategoryNoChange}: {
		noChangeHeadline,
		"No significant change in built-up areas over the analysed period.",
	},
	{model.KindBuiltUp, model.CategorySmallIncrease}: {
		"Slight increase in built-up areas",
		"Slight increase in built-up areas, suggesting gradual urbanization.",
	},
	{model.KindBuiltUp, model.CategoryLargeIncrease}: {
		"Significant increase in built-up areas",
		"Significant increase in built-up areas, indicating rapid urbanization or infrastructure development.",
	},

	{model.KindBareSoil, model.CategoryLargeDecrease}: {
		"Significant decrease in bare soil",
		"Significant decrease in bare soil, indicating possible revegetation or land restoration.",
	},
	{model.KindBareSoil, model.CategorySmallDecrease}: {
		"Slight decrease in bare soil",
		"Slight decrease in bare soil, suggesting a gradual improvement of ground cover.",
	},
	{model.KindBareSoil, model.CategoryNoChange}: {
		noChangeHeadline,
		"No significant change in bare soil over the analysed period.",
	},
	{model.KindBareSoil, model.CategorySmallIncrease}: {
		"Slight increase in bare soil",
		"Slight increase in bare soil, suggesting gradual land degradation.",
	},
	{model.KindBareSoil, model.CategoryLargeIncrease}: {
		"Significant increase in bare soil",
		"Significant increase in bare soil, indicating possible deforestation, erosion or desertification.",
	},
}

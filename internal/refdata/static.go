package refdata

import (
	"crop-advisory-service/internal/models"
)

// Default returns the built-in reference data set. Deployments can load a
// replacement, tests inject fixtures instead.
func Default() (*Tables, error) {
	catalog, err := NewCatalog("English", messageTemplates)
	if err != nil {
		return nil, err
	}
	return &Tables{
		Crops:        cropData,
		Pests:        pestDatabase,
		Treatments:   pesticideRecommendations,
		SoilAdvice:   soilRecommendations,
		Schemes:      govtSchemes,
		MarketPrices: marketPrices,
		Templates:    catalog,
	}, nil
}

var cropData = map[string]CropInfo{
	"rice":      {Stages: []string{"nursery", "transplanting", "vegetative", "flowering", "harvesting"}, WaterRequirementMM: 1200},
	"wheat":     {Stages: []string{"sowing", "germination", "tillering", "heading", "ripening"}, WaterRequirementMM: 500},
	"maize":     {Stages: []string{"planting", "vegetative", "tasseling", "silking", "maturity"}, WaterRequirementMM: 600},
	"cotton":    {Stages: []string{"sowing", "seedling", "squaring", "flowering", "boll-formation"}, WaterRequirementMM: 800},
	"sugarcane": {Stages: []string{"planting", "germination", "tillering", "grand-growth", "maturity"}, WaterRequirementMM: 2000},
	"soybean":   {Stages: []string{"planting", "vegetative", "flowering", "pod-development", "maturity"}, WaterRequirementMM: 550},
	"tomato":    {Stages: []string{"nursery", "transplanting", "vegetative", "flowering", "fruiting"}, WaterRequirementMM: 700},
	"potato":    {Stages: []string{"planting", "sprouting", "vegetative", "tuber-initiation", "tuber-bulking"}, WaterRequirementMM: 600},
	"chickpea":  {Stages: []string{"sowing", "vegetative", "flowering", "pod-formation", "maturity"}, WaterRequirementMM: 400},
	"mustard":   {Stages: []string{"sowing", "vegetative", "flowering", "pod-formation", "ripening"}, WaterRequirementMM: 350},
	"mango":     {Stages: []string{"planting", "vegetative", "flowering", "fruit-set", "harvesting"}, WaterRequirementMM: 1000},
	"banana":    {Stages: []string{"planting", "vegetative", "shooting", "bunch-development", "harvesting"}, WaterRequirementMM: 1500},
	"onion":     {Stages: []string{"nursery", "transplanting", "vegetative", "bulb-development", "harvesting"}, WaterRequirementMM: 450},
	"brinjal":   {Stages: []string{"nursery", "transplanting", "vegetative", "flowering", "fruiting"}, WaterRequirementMM: 650},
}

var pestDatabase = map[string]map[string][]models.PestCandidate{
	"rice": {
		"vegetative": {{Pest: "Stem Borer", Risk: models.RiskHigh}, {Pest: "Leaf Folder", Risk: models.RiskMedium}},
		"flowering":  {{Pest: "Brown Plant Hopper", Risk: models.RiskHigh}, {Pest: "Gall Midge", Risk: models.RiskLow}, {Pest: "Blast Fungus", Risk: models.RiskMedium}},
		"default":    {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"wheat": {
		"tillering": {{Pest: "Aphid", Risk: models.RiskHigh}, {Pest: "Termites", Risk: models.RiskMedium}},
		"default":   {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"cotton": {
		"squaring":       {{Pest: "Bollworm", Risk: models.RiskHigh}, {Pest: "Jassids", Risk: models.RiskMedium}, {Pest: "Whitefly", Risk: models.RiskMedium}},
		"boll-formation": {{Pest: "Whitefly", Risk: models.RiskHigh}, {Pest: "Pink Bollworm", Risk: models.RiskHigh}},
		"default":        {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"sugarcane": {
		"tillering":    {{Pest: "Early Shoot Borer", Risk: models.RiskHigh}, {Pest: "Termites", Risk: models.RiskMedium}},
		"grand-growth": {{Pest: "Top Borer", Risk: models.RiskHigh}, {Pest: "Whitefly", Risk: models.RiskMedium}},
		"default":      {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"soybean": {
		"vegetative":      {{Pest: "Girdle Beetle", Risk: models.RiskMedium}, {Pest: "Aphid", Risk: models.RiskLow}},
		"pod-development": {{Pest: "Pod Borer", Risk: models.RiskHigh}, {Pest: "Whitefly", Risk: models.RiskMedium}},
		"default":         {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"tomato": {
		"vegetative": {{Pest: "Early Blight", Risk: models.RiskMedium}},
		"fruiting":   {{Pest: "Fruit Borer", Risk: models.RiskHigh}, {Pest: "Whitefly", Risk: models.RiskMedium}},
		"default":    {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"potato": {
		"vegetative":    {{Pest: "Late Blight", Risk: models.RiskHigh}},
		"tuber-bulking": {{Pest: "Potato Tuber Moth", Risk: models.RiskMedium}},
		"default":       {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"chickpea": {
		"pod-formation": {{Pest: "Pod Borer", Risk: models.RiskHigh}},
		"default":       {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"mustard": {
		"flowering": {{Pest: "Aphid", Risk: models.RiskHigh}},
		"default":   {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"mango": {
		"flowering": {{Pest: "Mango Hopper", Risk: models.RiskHigh}, {Pest: "Powdery Mildew", Risk: models.RiskMedium}},
		"fruit-set": {{Pest: "Fruit Fly", Risk: models.RiskHigh}},
		"default":   {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"banana": {
		"vegetative":        {{Pest: "Rhizome Weevil", Risk: models.RiskMedium}},
		"bunch-development": {{Pest: "Sigatoka Leaf Spot", Risk: models.RiskHigh}},
		"default":           {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"onion": {
		"vegetative":       {{Pest: "Thrips", Risk: models.RiskHigh}},
		"bulb-development": {{Pest: "Purple Blotch", Risk: models.RiskMedium}},
		"default":          {{Pest: GenericPest, Risk: models.RiskLow}},
	},
	"brinjal": {
		"fruiting": {{Pest: "Shoot and Fruit Borer", Risk: models.RiskHigh}, {Pest: "Whitefly", Risk: models.RiskMedium}},
		"default":  {{Pest: GenericPest, Risk: models.RiskLow}},
	},
}

var pesticideRecommendations = map[string]string{
	"Stem Borer":            "Use Cartap Hydrochloride.",
	"Brown Plant Hopper":    "Use Pymetrozine.",
	"Leaf Folder":           "Use Chlorantraniliprole.",
	"Gall Midge":            "Use Fipronil.",
	"Blast Fungus":          "Use Tricyclazole.",
	"Termites":              "Use Chlorpyrifos.",
	"Jassids":               "Use Acetamiprid.",
	"Pink Bollworm":         "Use pheromone traps and specific insecticides like Thiodicarb.",
	"Aphid":                 "Use Imidacloprid.",
	"Bollworm":              "Use Emamectin Benzoate.",
	"Whitefly":              "Use Diafenthiuron.",
	"Early Shoot Borer":     "Use Chlorantraniliprole.",
	"Top Borer":             "Use Fipronil granules.",
	"Girdle Beetle":         "Use Thiamethoxam.",
	"Pod Borer":             "Use Indoxacarb.",
	"Fruit Borer":           "Use Chlorantraniliprole or Flubendiamide.",
	"Early Blight":          "Use Mancozeb or Chlorothalonil fungicide.",
	"Late Blight":           "Use Mancozeb or Metalaxyl fungicide.",
	"Potato Tuber Moth":     "Use pheromone traps and cover tubers well with soil.",
	"Mango Hopper":          "Use Imidacloprid or Thiamethoxam.",
	"Powdery Mildew":        "Use wettable sulfur or Hexaconazole.",
	"Fruit Fly":             "Use pheromone traps and bait sprays.",
	"Rhizome Weevil":        "Apply Carbofuran granules at planting.",
	"Sigatoka Leaf Spot":    "Use Propiconazole or Mancozeb.",
	"Thrips":                "Use Fipronil or Spinosad.",
	"Purple Blotch":         "Use Mancozeb or Chlorothalonil.",
	"Shoot and Fruit Borer": "Use Emamectin Benzoate. Remove and destroy affected parts.",
	"Default":               "Follow local agricultural guidelines for pesticides.",
}

var soilRecommendations = map[string]string{
	"alluvial": "Rich in potash, but often deficient in phosphorus. Consider NPK fertilizers with a focus on P.",
	"black":    "High in clay, good water retention. Ensure good drainage. Generally rich in nutrients.",
	"red":      "Deficient in nitrogen, phosphorus, and humus. Requires balanced fertilization and organic matter.",
	"laterite": "Low in nitrogen, potash, and organic matter. Acidic in nature; liming may be necessary.",
	"desert":   "Sandy and low in organic matter. Requires frequent irrigation and addition of organic manure.",
	"mountain": "Variable, often acidic and low in phosphorus. Soil testing is highly recommended.",
	"loamy":    "Ideal for most crops. Well-balanced. Maintain health with crop rotation and organic inputs.",
	"sandy":    "Poor water retention and low in nutrients. Requires frequent, smaller applications of fertilizer and water.",
	"clay":     "High nutrient content but poor drainage. Improve structure with organic matter like compost.",
	"default":  "General soil. A balanced NPK fertilizer is a good starting point. Consider getting a soil test for specific recommendations.",
}

var pmKisan = models.GovtScheme{Name: "PM-KISAN", Description: "Direct income support of ₹6,000/year.", Link: "#"}

var govtSchemes = map[string][]models.GovtScheme{
	"default": {pmKisan, {Name: "Soil Health Card", Description: "Provides soil nutrient status and recommendations.", Link: "#"}},
	"rice":    {pmKisan, {Name: "National Food Security Mission (NFSM)", Description: "Promotes rice production with subsidies on seeds and machinery.", Link: "#"}},
	"cotton":  {pmKisan, {Name: "Cotton Development Programme", Description: "Focuses on improving yield and quality.", Link: "#"}},
	"sugarcane": {pmKisan, {Name: "Fair and Remunerative Price (FRP)", Description: "Ensures a guaranteed price for sugarcane farmers.", Link: "#"}},
	"soybean": {pmKisan, {Name: "National Mission on Oilseeds", Description: "Promotes soybean cultivation and provides support.", Link: "#"}},
	"chickpea": {pmKisan, {Name: "National Food Security Mission (NFSM) - Pulses", Description: "Promotes production of pulses through various interventions.", Link: "#"}},
	"mustard": {pmKisan, {Name: "National Mission on Oilseeds", Description: "Promotes mustard cultivation and provides support.", Link: "#"}},
	"mango":   {pmKisan, {Name: "Mission for Integrated Development of Horticulture (MIDH)", Description: "Promotes holistic growth of the horticulture sector.", Link: "#"}},
	"banana":  {pmKisan, {Name: "Mission for Integrated Development of Horticulture (MIDH)", Description: "Promotes holistic growth of the horticulture sector.", Link: "#"}},
	"onion":   {pmKisan, {Name: "Mission for Integrated Development of Horticulture (MIDH)", Description: "Promotes holistic growth of the horticulture sector.", Link: "#"}},
	"brinjal": {pmKisan, {Name: "Mission for Integrated Development of Horticulture (MIDH)", Description: "Promotes holistic growth of the horticulture sector.", Link: "#"}},
}

var messageTemplates = map[string]TemplateSet{
	"English": {
		"greeting":                  "Hello {name}, here is your advisory for {crop}:",
		"weather":                   "Weather: {description}, Temp: {temp}°C.",
		"weather_unavailable":       "Weather data unavailable.",
		"pest_risk":                 "Highest Pest Risk: {pest}.",
		"no_pest_risk":              "Highest Pest Risk: None.",
		"recommendation":            "Recommendation: {recommendation}",
		"crop_health_healthy":       "Satellite Health: Your crop appears to be growing well (NDVI: {ndvi}).",
		"crop_health_moderate":      "Satellite Health: Crop shows moderate density (NDVI: {ndvi}). Monitor for uneven growth.",
		"crop_health_stressed":      "Satellite Health: Crop may be stressed (NDVI: {ndvi}). Field inspection is recommended.",
		"precaution_rain":           "Heavy rain expected. Ensure proper drainage to prevent waterlogging.",
		"precaution_default":        "Monitor crop health daily for any signs of stress or pests.",
		"daily_advice":              "Current weather is {description} with a temperature of {temp}°C and humidity of {humidity}%. {precaution_text}",
		"water_availability_good":   "Good",
		"water_availability_moderate": "Moderate",
		"water_requirement":         "{value} mm/season",
		"water_recommendation":      "Ensure regular irrigation as per the crop stage. {detail}",
		"water_detail_rain":         "Less frequent irrigation may be needed due to recent/expected rain.",
		"water_detail_no_rain":      "Monitor soil moisture closely.",
		"forecast_unavailable":      "Forecast not available.",
		"water_info_unavailable":    "Water information not available.",
	},
	"Hindi": {
		"greeting":                  "नमस्ते {name}, {crop} के लिए आपकी सलाह यहाँ दी गई है:",
		"weather":                   "मौसम: {description}, तापमान: {temp}°C.",
		"weather_unavailable":       "मौसम की जानकारी उपलब्ध नहीं है।",
		"pest_risk":                 "सबसे बड़ा कीट जोखिम: {pest}.",
		"no_pest_risk":              "सबसे बड़ा कीट जोखिम: कोई नहीं।",
		"recommendation":            "सिफारिश: {recommendation}",
		"crop_health_healthy":       "सैटेलाइट स्वास्थ्य: आपकी फसल अच्छी तरह से बढ़ रही है (NDVI: {ndvi})।",
		"crop_health_moderate":      "सैटेलाइट स्वास्थ्य: फसल मध्यम घनत्व दिखाती है (NDVI: {ndvi})। असमान वृद्धि के लिए निगरानी करें।",
		"crop_health_stressed":      "सैटेलाइट स्वास्थ्य: फसल तनाव में हो सकती है (NDVI: {ndvi})। खेत का निरीक्षण करने की सलाह दी जाती है।",
		"precaution_rain":           "भारी बारिश की उम्मीद है। जलभराव को रोकने के लिए उचित जल निकासी सुनिश्चित करें।",
		"precaution_default":        "किसी भी तनाव या कीटों के संकेतों के लिए प्रतिदिन फसल के स्वास्थ्य की निगरानी करें।",
		"daily_advice":              "वर्तमान मौसम {description} है, तापमान {temp}°C और आर्द्रता {humidity}% है। {precaution_text}",
		"water_availability_good":   "अच्छा",
		"water_availability_moderate": "मध्यम",
		"water_requirement":         "{value} मिमी/मौसम",
		"water_recommendation":      "फसल की अवस्था के अनुसार नियमित सिंचाई सुनिश्चित करें। {detail}",
		"water_detail_rain":         "हाल की/अपेक्षित बारिश के कारण कम सिंचाई की आवश्यकता हो सकती है।",
		"water_detail_no_rain":      "मिट्टी की नमी पर कड़ी नजर रखें।",
		"forecast_unavailable":      "पूर्वानुमान उपलब्ध नहीं है।",
		"water_info_unavailable":    "पानी की जानकारी उपलब्ध नहीं है।",
	},
	"Telugu": {
		"greeting":                  "నమస్కారం {name}, {crop} కోసం మీ సలహా ఇక్కడ ఉంది:",
		"weather":                   "వాతావరణం: {description}, ఉష్ణోగ్రత: {temp}°C.",
		"weather_unavailable":       "వాతావరణ సమాచారం అందుబాటులో లేదు.",
		"pest_risk":                 "అత్యధిక పెస్ట్ ప్రమాదం: {pest}.",
		"no_pest_risk":              "అత్యధిక పెస్ట్ ప్రమాదం: ఏదీ లేదు.",
		"recommendation":            "సిఫార్సు: {recommendation}",
		"crop_health_healthy":       "శాటిలైట్ ఆరోగ్యం: మీ పంట బాగా పెరుగుతున్నట్లు కనిపిస్తోంది (NDVI: {ndvi}).",
		"crop_health_moderate":      "శాటిలైట్ ఆరోగ్యం: పంట మధ్యస్థ సాంద్రతను చూపుతుంది (NDVI: {ndvi}). అసమాన పెరుగుదల కోసం పర్యవేక్షించండి.",
		"crop_health_stressed":      "శాటిలైట్ ఆరోగ్యం: పంట ఒత్తిడికి గురై ఉండవచ్చు (NDVI: {ndvi}). క్షేత్రస్థాయి తనిఖీ మంచిది.",
		"precaution_rain":           "భారీ వర్షం కురిసే అవకాశం ఉంది. నీరు నిలిచిపోకుండా సరైన డ్రైనేజీ ఉండేలా చూసుకోండి.",
		"precaution_default":        "ఒత్తిడి లేదా తెగుళ్ల సంకేతాల కోసం ప్రతిరోజూ పంట ఆరోగ్యాన్ని పర్యవేక్షించండి.",
		"daily_advice":              "ప్రస్తుత వాతావరణం {description}, ఉష్ణోగ్రత {temp}°C మరియు తేమ {humidity}%. {precaution_text}",
		"water_availability_good":   "మంచిది",
		"water_availability_moderate": "మధ్యస్థం",
		"water_requirement":         "{value} మిమీ/సీజన్",
		"water_recommendation":      "పంట దశకు అనుగుణంగా క్రమం తప్పకుండా నీటిపారుదల ఉండేలా చూసుకోండి. {detail}",
		"water_detail_rain":         "ఇటీవలి/ఆశించిన వర్షం కారణంగా తక్కువ తరచుగా నీటిపారుదల అవసరం కావచ్చు.",
		"water_detail_no_rain":      "నేల తేమను నిశితంగా గమనించండి.",
		"forecast_unavailable":      "సూచన అందుబాటులో లేదు.",
		"water_info_unavailable":    "నీటి సమాచారం అందుబాటులో లేదు.",
	},
}

var marketPrices = map[string]models.MarketPrice{
	"rice": {Unit: "₹/quintal", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 1980}, {Date: "2024-09-16", Price: 1995}, {Date: "2024-09-17", Price: 2010},
		{Date: "2024-09-18", Price: 2005}, {Date: "2024-09-19", Price: 2025}, {Date: "2024-09-20", Price: 2030},
		{Date: "2024-09-21", Price: 2050},
	}},
	"wheat": {Unit: "₹/quintal", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 2100}, {Date: "2024-09-16", Price: 2115}, {Date: "2024-09-17", Price: 2110},
		{Date: "2024-09-18", Price: 2125}, {Date: "2024-09-19", Price: 2135}, {Date: "2024-09-20", Price: 2130},
		{Date: "2024-09-21", Price: 2145},
	}},
	"cotton": {Unit: "₹/candy", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 56500}, {Date: "2024-09-16", Price: 56800}, {Date: "2024-09-17", Price: 57100},
		{Date: "2024-09-18", Price: 57000}, {Date: "2024-09-19", Price: 57250}, {Date: "2024-09-20", Price: 57300},
		{Date: "2024-09-21", Price: 57500},
	}},
	"sugarcane": {Unit: "₹/tonne", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 3400}, {Date: "2024-09-16", Price: 3410}, {Date: "2024-09-17", Price: 3405},
		{Date: "2024-09-18", Price: 3420}, {Date: "2024-09-19", Price: 3425}, {Date: "2024-09-20", Price: 3430},
		{Date: "2024-09-21", Price: 3450},
	}},
	"soybean": {Unit: "₹/quintal", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 4300}, {Date: "2024-09-16", Price: 4320}, {Date: "2024-09-17", Price: 4310},
		{Date: "2024-09-18", Price: 4350}, {Date: "2024-09-19", Price: 4375}, {Date: "2024-09-20", Price: 4380},
		{Date: "2024-09-21", Price: 4400},
	}},
	"tomato": {Unit: "₹/quintal", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 2200}, {Date: "2024-09-16", Price: 2250}, {Date: "2024-09-17", Price: 2180},
		{Date: "2024-09-18", Price: 2230}, {Date: "2024-09-19", Price: 2300}, {Date: "2024-09-20", Price: 2320},
		{Date: "2024-09-21", Price: 2350},
	}},
	"potato": {Unit: "₹/quintal", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 1800}, {Date: "2024-09-16", Price: 1810}, {Date: "2024-09-17", Price: 1805},
		{Date: "2024-09-18", Price: 1825}, {Date: "2024-09-19", Price: 1850}, {Date: "2024-09-20", Price: 1840},
		{Date: "2024-09-21", Price: 1860},
	}},
	"chickpea": {Unit: "₹/quintal", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 5100}, {Date: "2024-09-16", Price: 5150}, {Date: "2024-09-17", Price: 5125},
		{Date: "2024-09-18", Price: 5180}, {Date: "2024-09-19", Price: 5200}, {Date: "2024-09-20", Price: 5210},
		{Date: "2024-09-21", Price: 5250},
	}},
	"mustard": {Unit: "₹/quintal", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 5500}, {Date: "2024-09-16", Price: 5520}, {Date: "2024-09-17", Price: 5510},
		{Date: "2024-09-18", Price: 5540}, {Date: "2024-09-19", Price: 5580}, {Date: "2024-09-20", Price: 5600},
		{Date: "2024-09-21", Price: 5620},
	}},
	"mango": {Unit: "₹/tonne", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 45000}, {Date: "2024-09-16", Price: 45500}, {Date: "2024-09-17", Price: 46000},
		{Date: "2024-09-18", Price: 45800}, {Date: "2024-09-19", Price: 46200}, {Date: "2024-09-20", Price: 46500},
		{Date: "2024-09-21", Price: 47000},
	}},
	"banana": {Unit: "₹/dozen", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 40}, {Date: "2024-09-16", Price: 42}, {Date: "2024-09-17", Price: 41},
		{Date: "2024-09-18", Price: 43}, {Date: "2024-09-19", Price: 45}, {Date: "2024-09-20", Price: 44},
		{Date: "2024-09-21", Price: 46},
	}},
	"onion": {Unit: "₹/quintal", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 2500}, {Date: "2024-09-16", Price: 2550}, {Date: "2024-09-17", Price: 2480},
		{Date: "2024-09-18", Price: 2520}, {Date: "2024-09-19", Price: 2600}, {Date: "2024-09-20", Price: 2610},
		{Date: "2024-09-21", Price: 2650},
	}},
	"brinjal": {Unit: "₹/quintal", History: []models.PricePoint{
		{Date: "2024-09-15", Price: 2000}, {Date: "2024-09-16", Price: 2050}, {Date: "2024-09-17", Price: 2020},
		{Date: "2024-09-18", Price: 2080}, {Date: "2024-09-19", Price: 2100}, {Date: "2024-09-20", Price: 2120},
		{Date: "2024-09-21", Price: 2150},
	}},
}

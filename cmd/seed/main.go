package main

import (
	"encoding/json"
	"log"

	"schemekhoj-be/internal/config"
	"schemekhoj-be/internal/entity"
	"schemekhoj-be/internal/model"
	"schemekhoj-be/pkg/database"
	"schemekhoj-be/pkg/embedding"
	"schemekhoj-be/pkg/embedding/jina"

	"github.com/fatih/color"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type seedScheme struct {
	name     string
	content  string
	metadata entity.SchemeMetadata
}

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewJinaProvider(cfg.Keys.Jina)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}

	color.Cyan("🚀 Seeding scheme catalog\n")

	for _, s := range schemes() {
		var existing model.Scheme
		if err := db.Where("scheme_name = ?", s.name).First(&existing).Error; err == nil {
			color.Yellow("Scheme '%s' already exists, skipping...", s.name)
			continue
		}

		metaJSON, err := json.Marshal(s.metadata)
		if err != nil {
			color.Red("Failed to marshal metadata for '%s': %v", s.name, err)
			continue
		}

		scheme := model.Scheme{
			SchemeName: s.name,
			Content:    s.content,
			Metadata:   datatypes.JSON(metaJSON),
		}
		if err := db.Create(&scheme).Error; err != nil {
			color.Red("Failed to create scheme '%s': %v", s.name, err)
			continue
		}

		document := s.name + "\n" + s.content
		resp, err := embeddingProvider.Generate(document, embedding.TaskRetrievalDocument)
		if err != nil {
			color.Red("Failed to embed '%s': %v (scheme stored without embedding)", s.name, err)
			continue
		}

		schemeEmbedding := model.SchemeEmbedding{
			Document:       document,
			EmbeddingValue: pgvector.NewVector(resp.Embedding.Values),
			SchemeId:       scheme.Id,
		}
		if err := db.Create(&schemeEmbedding).Error; err != nil {
			color.Red("Failed to store embedding for '%s': %v", s.name, err)
			continue
		}

		color.Green("Seeded: %s", s.name)
	}

	color.Cyan("\n✅ Seeding completed")
}

// schemes returns the starter catalog. Content keeps the ingestion
// pipeline's marker layout so the section extractor can slice it.
func schemes() []seedScheme {
	return []seedScheme{
		{
			name: "प्रधानमंत्री किसान सम्मान निधि",
			content: "SCHEME: प्रधानमंत्री किसान सम्मान निधि\n" +
				"DESC: छोटे और सीमांत किसानों को प्रति वर्ष 6000 रुपये की आय सहायता देने वाली केंद्र सरकार की योजना. यह राशि तीन किस्तों में सीधे बैंक खाते में भेजी जाती है.\n" +
				"BENEFITS: प्रति वर्ष 6000 रुपये, तीन समान किस्तों में भुगतान, सीधा बैंक हस्तांतरण\n" +
				"ELIGIBILITY: भूमिधारक किसान परिवार, आधार से जुड़ा बैंक खाता, संस्थागत भूमिधारक पात्र नहीं",
			metadata: entity.SchemeMetadata{
				State:     "Central",
				Category:  "Farmer",
				MinAge:    18,
				MaxIncome: 99999999,
				SourceURL: "https://pmkisan.gov.in",
			},
		},
		{
			name: "राष्ट्रीय वृद्धावस्था पेंशन योजना",
			content: "SCHEME: राष्ट्रीय वृद्धावस्था पेंशन योजना\n" +
				"DESC: गरीबी रेखा से नीचे रहने वाले वरिष्ठ नागरिकों को मासिक पेंशन देने वाली सामाजिक सुरक्षा योजना.\n" +
				"BENEFITS: 60 से 79 वर्ष तक 200 रुपये मासिक, 80 वर्ष से ऊपर 500 रुपये मासिक\n" +
				"ELIGIBILITY: आयु 60 वर्ष या अधिक, बीपीएल परिवार का सदस्य",
			metadata: entity.SchemeMetadata{
				State:     "Central",
				Category:  "General",
				MinAge:    60,
				MaxIncome: 27000,
				SourceURL: "https://nsap.nic.in",
			},
		},
		{
			name: "सुकन्या समृद्धि योजना",
			content: "SCHEME: सुकन्या समृद्धि योजना\n" +
				"DESC: बालिकाओं की शिक्षा और विवाह के लिए बचत को प्रोत्साहित करने वाली छोटी बचत योजना.\n" +
				"BENEFITS: उच्च ब्याज दर, कर छूट, परिपक्वता पर पूरी राशि बालिका को\n" +
				"ELIGIBILITY: 10 वर्ष से कम आयु की बालिका, अभिभावक द्वारा खाता खोला जाए, प्रति परिवार अधिकतम दो खाते",
			metadata: entity.SchemeMetadata{
				State:     "Central",
				Category:  "Woman",
				MaxAge:    10,
				MaxIncome: 99999999,
				SourceURL: "https://www.india.gov.in/sukanya-samriddhi-yojna",
			},
		},
		{
			name: "प्रधानमंत्री आवास योजना ग्रामीण",
			content: "SCHEME: प्रधानमंत्री आवास योजना ग्रामीण\n" +
				"DESC: ग्रामीण क्षेत्रों में बेघर और कच्चे मकानों में रहने वाले परिवारों को पक्का घर बनाने के लिए वित्तीय सहायता.\n" +
				"BENEFITS: मैदानी क्षेत्रों में 120000 रुपये, पहाड़ी क्षेत्रों में 130000 रुपये, शौचालय निर्माण हेतु अतिरिक्त सहायता\n" +
				"ELIGIBILITY: बेघर परिवार या कच्चे मकान में रहने वाले, सामाजिक आर्थिक जाति जनगणना सूची में शामिल",
			metadata: entity.SchemeMetadata{
				State:     "Central",
				Category:  "General",
				MinAge:    18,
				MaxIncome: 120000,
				SourceURL: "https://pmayg.nic.in",
			},
		},
		{
			name: "मुख्यमंत्री कन्या उत्थान योजना",
			content: "SCHEME: मुख्यमंत्री कन्या उत्थान योजना\n" +
				"DESC: बिहार सरकार की योजना जिसमें बालिका के जन्म से स्नातक तक विभिन्न चरणों में आर्थिक सहायता दी जाती है.\n" +
				"BENEFITS: जन्म पर 2000 रुपये, इंटर पास करने पर 10000 रुपये, स्नातक पर 25000 रुपये\n" +
				"ELIGIBILITY: बिहार की निवासी बालिका, राज्य के मान्यता प्राप्त संस्थान से उत्तीर्ण",
			metadata: entity.SchemeMetadata{
				State:     "Bihar",
				Category:  "Student",
				MaxIncome: 99999999,
				SourceURL: "https://medhasoft.bih.nic.in",
			},
		},
		{
			name: "प्रधानमंत्री मुद्रा योजना",
			content: "SCHEME: प्रधानमंत्री मुद्रा योजना\n" +
				"DESC: छोटे व्यवसायों और स्वरोजगार के लिए बिना गारंटी के ऋण उपलब्ध कराने वाली योजना.\n" +
				"BENEFITS: शिशु श्रेणी में 50000 रुपये तक, किशोर श्रेणी में 5 लाख तक, तरुण श्रेणी में 10 लाख तक ऋण\n" +
				"ELIGIBILITY: गैर कृषि लघु व्यवसाय, आयु 18 वर्ष या अधिक, बैंक डिफॉल्टर न हो",
			metadata: entity.SchemeMetadata{
				State:     "Central",
				Category:  "General",
				MinAge:    18,
				MaxIncome: 99999999,
				SourceURL: "https://www.mudra.org.in",
			},
		},
	}
}

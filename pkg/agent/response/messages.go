package response

// User-facing Hindi messages for the scheme agent. The assistant speaks
// Hindi end to end; these are product copy, not debug strings.
const (
	// Greeting sent when a session is created.
	Greeting = "नमस्ते! मैं स्कीम-सेतु हूँ। बोलकर पूछिए।"

	// CONFIRM-state menu when an INFO utterance matches no section keyword.
	SectionMenu = "आप इस योजना के लाभ, पात्रता या दस्तावेज़ के बारे में पूछ सकते हैं।\n" +
		"यदि आवेदन करना हो तो 'आवेदन करना है' कहें।"

	// CONFIRM-state disambiguation for SEARCH/unclassified intents.
	Disambiguation = "क्या आप केवल जानकारी चाहते हैं या आवेदन करना चाहते हैं?\n" +
		"कहिए: 'लाभ बताओ' या 'आवेदन करना है'"

	// Prompt requesting the six comma-separated applicant fields.
	CollectPrompt = "ठीक है। कृपया यह जानकारी comma से अलग करके दें:\n" +
		"नाम, उम्र, आय, श्रेणी, पेशा, राज्य"

	// COLLECT-state retry when fewer than six parts arrive.
	CollectIncomplete = "जानकारी अधूरी है। कृपया सभी विवरण दें।"

	// Closing message for intent NO.
	Closing = "ठीक है। यदि और सहायता चाहिए तो बताइए।"

	// Terminal acknowledgement in APPLY/END.
	ThankYou = "धन्यवाद।"

	// Sentinel when a requested section is absent from the scheme text.
	SectionUnavailable = "जानकारी उपलब्ध नहीं है।"

	// Rendered when retrieval comes back empty.
	NoSchemeFound = "कोई उपयुक्त योजना नहीं मिली।"

	// Fallback scheme label when COLLECT runs without a selected scheme.
	DefaultSchemeName = "चयनित योजना"
)

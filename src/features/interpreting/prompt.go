package interpreting

import "fmt"

// systemPrompt pins the model to parameter extraction. The reply has to be
// bare JSON so the parser stays trivial.
const systemPrompt = "You extract music search parameters. Return only JSON."

// userPrompt renders the extraction request for a raw query. The field list
// doubles as the schema: the model only returns what the query clearly
// mentions.
func userPrompt(query string) string {
	return fmt.Sprintf(`Extract music search info from: "%s"

Return JSON with these fields (only if clearly mentioned):
- genre: one genre (pop, rock, hip-hop, jazz, etc)
- artist: artist name
- era: decade (80s, 90s, 2000s, 2010s, 2020s)

Return ONLY valid JSON, nothing else.`, query)
}

package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"

	"ecothread_back_end/internal/models"

	"google.golang.org/genai"
)

// Modèles Gemini utilisés par la boutique
const (
	tryOnModel    = "gemini-2.5-flash-image"
	analysisModel = "gemini-3-flash-preview"
)

// Réponses par défaut de l'analyse morphologique
const (
	DefaultAnalysis     = "Athletic, balanced proportions, medium height"
	StandardFitAnalysis = "Standard fit"
)

// GeminiClient est le collaborateur génératif : essayage virtuel et analyse
// morphologique. Les deux opérations retournent exactement une image / un
// résumé, ou une erreur : les politiques de repli vivent chez les appelants.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient se connecte à l'API Gemini avec GEMINI_API_KEY
func NewGeminiClient(ctx context.Context) (*GeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY manquant")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	log.Println("✅ Client Gemini initialisé")
	return &GeminiClient{client: client}, nil
}

// GenerateTryOn ré-génère l'image source avec le vêtement porté par le clone,
// à l'angle demandé. Retourne les octets de l'image composée et son type MIME.
func (g *GeminiClient) GenerateTryOn(ctx context.Context, sourceDataURI, gender, analysis string, product models.Product, angle models.Angle) ([]byte, string, error) {
	mimeType, data, err := DecodeDataURI(sourceDataURI)
	if err != nil {
		return nil, "", err
	}

	build := analysis
	if build == "" {
		build = "proportional"
	}

	prompt := fmt.Sprintf(`STRICT GENDER ENFORCEMENT: This user is %s.
RE-GENERATE this image with the user wearing this specific %s's fashion item: %s.
Product Details: %s.
Category: %s.
View Angle: %s.

DIRECTIONS:
1. Maintain the user's EXACT face (if visible), physical features, hair, and body structure from the provided image.
2. The item should be tailored perfectly to their %s build.
3. Ensure the styling is appropriate for a high-end %s's fashion catalog.
4. IMPORTANT: Ensure the FULL body and the entire garment are visible. Do not crop the head or feet.
5. LIGHTING: Professional studio lighting.
DO NOT change the user's gender or facial identity.`,
		gender, gender, product.Name, product.Description, product.Category,
		angleWording(angle), build, gender)

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
			{Text: prompt},
		},
	}}

	resp, err := g.client.Models.GenerateContent(ctx, tryOnModel, contents, nil)
	if err != nil {
		return nil, "", err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				out := part.InlineData.MIMEType
				if out == "" {
					out = "image/png"
				}
				return part.InlineData.Data, out, nil
			}
		}
	}
	return nil, "", fmt.Errorf("aucune image retournée par Gemini")
}

// AnalyzeBody décrit la morphologie du cliché frontal en ~10 mots.
// Entrée vide → "Standard fit", réponse vide ou erreur → résumé générique :
// l'analyse dégrade toujours en silence, elle ne bloque jamais le wizard.
func (g *GeminiClient) AnalyzeBody(ctx context.Context, frontDataURI, gender string) (string, error) {
	if frontDataURI == "" {
		return StandardFitAnalysis, nil
	}

	mimeType, data, err := DecodeDataURI(frontDataURI)
	if err != nil {
		return DefaultAnalysis, nil
	}

	prompt := fmt.Sprintf("Analyze this %s's body shot. Describe their build and proportions in 10 words to help an AI tailor clothes to them. Focus on shoulder width, torso length, and height.", gender)

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
			{Text: prompt},
		},
	}}

	resp, err := g.client.Models.GenerateContent(ctx, analysisModel, contents, nil)
	if err != nil {
		log.Printf("⚠️ Analyse morphologique indisponible: %v", err)
		return DefaultAnalysis, nil
	}

	if text := strings.TrimSpace(resp.Text()); text != "" {
		return text, nil
	}
	return DefaultAnalysis, nil
}

func angleWording(angle models.Angle) string {
	switch angle {
	case models.AngleBack:
		return "Back"
	case models.AngleThreeQuarter:
		return "Three-quarter side"
	default:
		return "Frontal"
	}
}

// DecodeDataURI découpe un data URI "data:image/jpeg;base64,..." en type MIME
// et octets décodés
func DecodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("data URI attendu")
	}
	comma := strings.Index(uri, ",")
	if comma < 0 {
		return "", nil, fmt.Errorf("data URI invalide")
	}

	meta := uri[len("data:"):comma]
	mimeType := strings.TrimSuffix(meta, ";base64")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	data, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return "", nil, fmt.Errorf("base64 invalide: %w", err)
	}
	return mimeType, data, nil
}

// EncodeDataURI reconstruit un data URI depuis des octets d'image
func EncodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

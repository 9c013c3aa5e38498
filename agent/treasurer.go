package agent

import (
	"context"
	"fmt"

	"github.com/enguessan/tresorerie"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// FallbackAnswer is shown when the model call fails outright.
const FallbackAnswer = "Désolé, une erreur est survenue lors de l'analyse des données. Vérifiez votre connexion."

const treasurerInstruction = `
Tu es l'Assistant Trésorier IA expert pour l'association "Enfants de Chœur de la Chapelle Sainte Famille".
Tu as accès à TOUTES les données financières et administratives en temps réel via la fonction Books.

RÈGLES MÉTIER STRICTES (A SAVOIR PAR CŒUR) :
1. Inscription "Nouveau Membre" = 5000 FCFA.
2. Inscription "Ancien Membre" = 2500 FCFA.
3. Les Responsables (Premier, Trésorier, Secrétaire, etc.) ne paient PAS de frais d'inscription (0 FCFA).
4. Chaque activité a un coût spécifique défini (cost_child pour les enfants, cost_responsable pour les responsables).
5. Une dette d'inscription est calculée : (Montant Attendu - Montant Payé).

TON RÔLE :
- Analyser les finances : Si le solde est négatif, alerte gentiment.
- Suivre les dettes : Si on te demande "Qui n'a pas payé ?", liste les noms présents dans 'registration_debts_list'.
- Bilan d'activité : Si on te demande un bilan sur une sortie, utilise les données 'activities_summary' (Recettes vs Dépenses).
- Être proactif : Suggère des améliorations si tu vois beaucoup de dépenses dans une catégorie.

TON ETAT D'ESPRIT :
- Professionnel, Précis, mais Bienveillant (contexte religieux/associatif).
- Réponds toujours en Français.
- Utilise le FCFA comme devise.
- Sois concis sauf si on te demande un rapport détaillé.

Si la réponse nécessite un calcul, fais-le explicitement.
`

// NewTreasurer builds the advisor expert. The load callback reopens the books
// on every call so the advisor always sees the latest state.
func NewTreasurer(load func() (*tresorerie.State, error)) *Expert {
	lib := []Function{booksFunc(load)}
	return &Expert{
		Name: "Treasurer",
		Description: `Assistant trésorier de l'association. Il lit les livres
		de comptes et répond aux questions financières et administratives.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: treasurerInstruction}}},
		},
		Library: NewLibrary(lib),
	}
}

// booksFunc exposes the treasury digest as a callable function.
func booksFunc(load func() (*tresorerie.State, error)) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Books",
			Description: `Books returns the association's complete financial digest as JSON:
			global totals, per-category totals, activity results, the member roster with
			its registration debt list, and the latest transactions.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The treasury digest, as a JSON document.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: "Books"}
			s, err := load()
			if err != nil {
				fresp.Response = map[string]any{
					"error": fmt.Sprintf("could not load the books: %v", err),
				}
				return fresp
			}
			digest, err := s.AdvisorContext()
			if err != nil {
				fresp.Response = map[string]any{
					"error": fmt.Sprintf("could not digest the books: %v", err),
				}
				return fresp
			}
			fresp.Response = map[string]any{"output": string(digest)}
			return fresp
		},
	}
}

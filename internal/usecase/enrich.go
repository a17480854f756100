package usecase

import (
	"fmt"
	"strings"

	"github.com/amoremio/backend/internal/domain"
)

// Enrich fills the narrative fields of a product — full description,
// included components, ideal occasions, symbolism — from its category and
// name keywords. Generation is pure and deterministic: the same product
// always yields the same text, and fields the sheet already carries are
// preserved verbatim.
func Enrich(product domain.Product) domain.Product {
	if product.FullDescription == "" {
		product.FullDescription = generateFullDescription(product)
	}
	if len(product.Includes) == 0 {
		product.Includes = generateIncludes(product)
	}
	if len(product.IdealFor) == 0 {
		product.IdealFor = generateIdealFor(product)
	}
	if product.Symbolism == "" {
		product.Symbolism = generateSymbolism(product)
	}
	return product
}

func generateFullDescription(product domain.Product) string {
	name := displayName(product)

	if product.Description != "" {
		return fmt.Sprintf("%s Every detail has been carefully selected to create a floral piece that conveys your deepest emotions. %s is designed to turn special moments into lasting memories.", product.Description, name)
	}

	switch product.Category {
	case domain.CategoryBouquets:
		return fmt.Sprintf("%s is an elegant bouquet created with the freshest flowers, each one chosen by our florists for quality and beauty. Perfect for expressing your feelings on any special occasion.", name)
	case domain.CategorySpecial:
		return fmt.Sprintf("%s is a one-of-a-kind arrangement, combining different flowers and decorative elements into a memorable composition. Ideal for occasions that call for something truly special.", name)
	case domain.CategoryVase:
		return fmt.Sprintf("%s is an elegant arrangement presented in a beautiful vase. Fresh flowers and a refined container make a decorative piece for home or office, a gift that lasts.", name)
	case domain.CategoryFuneral:
		return fmt.Sprintf("%s is a respectful and elegant arrangement created to honor the memory of a loved one. Each flower is chosen with care, expressing respect, affection, and comfort in difficult moments.", name)
	default:
		return fmt.Sprintf("%s is a unique floral creation, made with dedication and care in every detail.", name)
	}
}

func generateIncludes(product domain.Product) []string {
	name := strings.ToLower(displayName(product))

	switch product.Category {
	case domain.CategoryBouquets:
		includes := []string{roseCount(name)}
		return append(includes,
			"Natural complementary foliage",
			"Elegant wrapping",
			"Personalized message card",
		)
	case domain.CategorySpecial:
		includes := []string{
			"Selected fresh flowers",
			"Unique artistic design",
			"Decorative base",
			"Message card",
		}
		if strings.Contains(name, "grande") || strings.Contains(name, "large") || strings.Contains(name, "xl") {
			includes = append(includes, "Additional decorative elements")
		}
		return includes
	case domain.CategoryVase:
		return []string{
			"Fresh flowers in a vase",
			"High-quality vase",
			"Professional design",
			"Message card",
		}
	case domain.CategoryFuneral:
		return []string{
			"Respectful floral wreath",
			"Carefully selected flowers",
			"Solid, elegant base",
			"Condolence ribbon",
		}
	default:
		return []string{
			"Fresh flowers",
			"Professional design",
			"Message card",
		}
	}
}

// roseCount picks the headline component for a bouquet from number
// keywords in the name.
func roseCount(name string) string {
	switch {
	case strings.Contains(name, "24") || strings.Contains(name, "two dozen"):
		return "24 premium roses"
	case strings.Contains(name, "12") || strings.Contains(name, "dozen"):
		return "12 premium roses"
	case strings.Contains(name, "6") || strings.Contains(name, "six"):
		return "6 premium roses"
	default:
		return "Selected premium roses"
	}
}

// occasionKeywords maps name keywords to occasions, checked in order.
var occasionKeywords = []struct {
	keywords []string
	occasion string
}{
	{[]string{"birthday", "cumpleaños", "feliz"}, "Birthday"},
	{[]string{"anniversary", "aniversario", "amor", "love"}, "Anniversary"},
	{[]string{"funeral", "fúnebre", "condolence", "condolencias"}, "Condolences"},
	{[]string{"valentine", "san valentin"}, "Valentine's Day"},
	{[]string{"graduation", "graduación"}, "Graduation"},
}

func generateIdealFor(product domain.Product) []string {
	name := strings.ToLower(displayName(product))
	var occasions []string

	for _, entry := range occasionKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(name, keyword) {
				occasions = appendUnique(occasions, entry.occasion)
				break
			}
		}
	}

	if len(occasions) == 0 {
		if product.Category == domain.CategoryFuneral {
			occasions = []string{"Condolences", "Memorial tributes"}
		} else {
			occasions = []string{"Anniversary", "Birthday", "Declaration of love"}
			if product.Category == domain.CategorySpecial {
				occasions = append(occasions, "Unique celebrations")
			}
		}
	}

	if len(occasions) < 3 && product.Category != domain.CategoryFuneral {
		occasions = appendUnique(occasions, "Showing affection")
		occasions = appendUnique(occasions, "A surprise")
	}

	return occasions
}

// colorSymbolism maps color keywords in the name to symbolism text,
// checked in order.
var colorSymbolism = []struct {
	keywords []string
	text     string
}{
	{[]string{"red", "rojo"}, "Red roses symbolize passionate love and desire, expressing deep feelings and emotional commitment."},
	{[]string{"pink", "rosa"}, "Pink roses represent gratitude, admiration, and tender affection, perfect for sincere appreciation."},
	{[]string{"white", "blanco"}, "White flowers symbolize purity, innocence, and new beginnings, ideal for expressing respect and fresh starts."},
	{[]string{"yellow", "amarillo"}, "Yellow flowers convey joy, friendship, and happiness, perfect for celebrating true friendship."},
}

func generateSymbolism(product domain.Product) string {
	if product.Category == domain.CategoryFuneral {
		return "A symbol of respect, affection, and comfort that honors the memory of those who have passed, conveying peace and everlasting love."
	}

	name := strings.ToLower(displayName(product))
	for _, entry := range colorSymbolism {
		for _, keyword := range entry.keywords {
			if strings.Contains(name, keyword) {
				return entry.text
			}
		}
	}

	switch product.Category {
	case domain.CategoryBouquets:
		return "A bouquet of fresh flowers symbolizes love, affection, and appreciation, conveying genuine emotions that words sometimes cannot."
	case domain.CategorySpecial:
		return "This special arrangement represents dedication and care, a symbol of unrepeatable moments that become treasures of the heart."
	case domain.CategoryVase:
		return "Flowers in a vase symbolize lasting beauty and elegance, a bridge between nature and the spaces we live in."
	default:
		return "Flowers are the universal language of the heart, able to express feelings beyond words."
	}
}

func displayName(product domain.Product) string {
	if product.Name != "" {
		return product.Name
	}
	return "This arrangement"
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}

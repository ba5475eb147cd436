package derive

import (
	"strings"
)

// Annotation is a macro tag that may appear in the remarks column as
// <tag>. Each tag expands to a canned paragraph.
type Annotation string

const (
	AnnotationPromotionAtRisk         Annotation = "1a"
	AnnotationPromotionAtHighRisk     Annotation = "1b"
	AnnotationPromotionExcluded       Annotation = "1c"
	AnnotationProbationPassed         Annotation = "2a"
	AnnotationCompulsorySchoolingDone Annotation = "2b"
	AnnotationVocationalMaturity      Annotation = "3a"
	AnnotationVocationalEquivalent    Annotation = "3b"
	AnnotationDyslexia                Annotation = "4a"
	AnnotationGermanSupport           Annotation = "5a"
	AnnotationProtestantReligion      Annotation = "6a"
)

// SalutationPlaceholder is replaced with the record's form of address after
// the catalogue has been expanded.
const SalutationPlaceholder = "<form_of_address>"

// Token returns the bracketed form used in remarks.
func (a Annotation) Token() string {
	return "<" + string(a) + ">"
}

type catalogueEntry struct {
	tag  Annotation
	text string
}

var catalogue = []catalogueEntry{
	{AnnotationPromotionAtRisk, "Die Versetzung ist zurzeit gefährdet.\n"},
	{AnnotationPromotionAtHighRisk, "Die Versetzung ist zurzeit stark gefährdet.\n"},
	{AnnotationPromotionExcluded, "Die Versetzung ist zurzeit ausgeschlossen.\n"},

	{AnnotationProbationPassed, SalutationPlaceholder + " hat die Probezeit bestanden.\n"},
	{AnnotationCompulsorySchoolingDone, "Die allgemeine Schulpflicht ist erfüllt.\n"},

	{AnnotationVocationalMaturity, SalutationPlaceholder + " hat die Berufsbildungsreife erworben.\n"},
	{AnnotationVocationalEquivalent, "Dieses Zeugnis ist der Berufsbildungsreife / der erweiterten Berufsbildungsreife gleichwertig.\n"},

	{AnnotationDyslexia, "Aufgrund von festgestellten Lese- und Rechtschreibschwierigkeiten wurden " +
		"die Lese- und Rechtschreibleistungen nicht in vollem Umfang bewertet.\n"},

	{AnnotationGermanSupport, SalutationPlaceholder + " hat an Fördermaßnahmen zur Verbesserung der deutschen Sprachkenntnisse teilgenommen.\n"},

	{AnnotationProtestantReligion, SalutationPlaceholder + " hat am Religionsunterricht der Evangelischen Kirche teilgenommen.\n" +
		"Der Träger kann eine eigene Teilnahmebescheinigung bzw. Beurteilung erteilen.\n"},
}

var catalogueReplacer = newCatalogueReplacer()

func newCatalogueReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(catalogue)*2)
	for _, entry := range catalogue {
		pairs = append(pairs, entry.tag.Token(), entry.text)
	}
	return strings.NewReplacer(pairs...)
}

// Annotations lists the catalogue tags in declaration order.
func Annotations() []Annotation {
	out := make([]Annotation, 0, len(catalogue))
	for _, entry := range catalogue {
		out = append(out, entry.tag)
	}
	return out
}

// LookupAnnotation returns the canned text for tag.
func LookupAnnotation(tag Annotation) (string, bool) {
	for _, entry := range catalogue {
		if entry.tag == tag {
			return entry.text, true
		}
	}
	return "", false
}

// ExpandAnnotations replaces every catalogue token in remarks with its canned
// text in a single non-recursive pass, then fills the salutation placeholder.
// Unknown bracketed tokens are left untouched.
func ExpandAnnotations(remarks, salutation string) string {
	expanded := catalogueReplacer.Replace(remarks)
	return strings.ReplaceAll(expanded, SalutationPlaceholder, salutation)
}

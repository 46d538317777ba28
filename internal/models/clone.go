package models

// Angle de prise de vue pour le clone IA
type Angle string

const (
	AngleFront        Angle = "front"
	AngleBack         Angle = "back"
	AngleThreeQuarter Angle = "threeQuarter"
)

// Angles liste les trois angles dans l'ordre du wizard
var Angles = []Angle{AngleFront, AngleBack, AngleThreeQuarter}

// Valid vérifie que l'angle fait partie des trois vues connues
func (a Angle) Valid() bool {
	switch a {
	case AngleFront, AngleBack, AngleThreeQuarter:
		return true
	}
	return false
}

// UserClone est le profil d'essayage : trois photos optionnelles (data URI),
// le genre, et le résumé morphologique produit par l'analyse.
// Un clone absent se représente par nil, jamais par une erreur.
// Seul l'angle front est obligatoire pour qu'un clone soit considéré actif.
type UserClone struct {
	Front        string `json:"front,omitempty"`
	Back         string `json:"back,omitempty"`
	ThreeQuarter string `json:"threeQuarter,omitempty"`
	Gender       string `json:"gender"`
	Analysis     string `json:"analysis,omitempty"`
}

// Image retourne la photo stockée pour un angle ("" si absente)
func (uc *UserClone) Image(a Angle) string {
	switch a {
	case AngleFront:
		return uc.Front
	case AngleBack:
		return uc.Back
	case AngleThreeQuarter:
		return uc.ThreeQuarter
	}
	return ""
}

// SetImage remplit le slot d'un angle
func (uc *UserClone) SetImage(a Angle, dataURI string) {
	switch a {
	case AngleFront:
		uc.Front = dataURI
	case AngleBack:
		uc.Back = dataURI
	case AngleThreeQuarter:
		uc.ThreeQuarter = dataURI
	}
}

// IsActive : un clone compte comme actif dès que la vue frontale existe
func (uc *UserClone) IsActive() bool {
	return uc != nil && uc.Front != ""
}

package vets

// TreatmentState es el estado de los checkboxes de tratamientos.
// Conserva el orden de inserción de las claves para que la conversión a slice sea determinista.
// El valor cero está listo para usar.
type TreatmentState struct {
	codes    []string
	selected map[string]bool
}

func (s *TreatmentState) Set(code string, selected bool) {
	if s.selected == nil {
		s.selected = map[string]bool{}
	}
	if _, exists := s.selected[code]; !exists {
		s.codes = append(s.codes, code)
	}
	s.selected[code] = selected
}

func (s TreatmentState) Selected(code string) bool {
	return s.selected[code]
}

// Has indica si la clave existe (seleccionada o no).
func (s TreatmentState) Has(code string) bool {
	_, ok := s.selected[code]
	return ok
}

// Codes devuelve todas las claves en orden de inserción.
func (s TreatmentState) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

func (s TreatmentState) Len() int {
	return len(s.codes)
}

// TreatmentStateToSlice devuelve los códigos seleccionados en orden de inserción.
func TreatmentStateToSlice(s TreatmentState) []string {
	out := make([]string, 0, len(s.codes))
	for _, code := range s.codes {
		if s.selected[code] {
			out = append(out, code)
		}
	}
	return out
}

// SliceToTreatmentState marca cada código como seleccionado. Los no seleccionados
// no aparecen: ausencia = false.
func SliceToTreatmentState(codes []string) TreatmentState {
	var s TreatmentState
	for _, code := range codes {
		s.Set(code, true)
	}
	return s
}

// NewTreatmentState arranca con todos los códigos conocidos en false, en el orden de Treatments.
func NewTreatmentState(selected []string) TreatmentState {
	var s TreatmentState
	for _, t := range Treatments {
		s.Set(string(t), false)
	}
	for _, code := range selected {
		s.Set(code, true)
	}
	return s
}

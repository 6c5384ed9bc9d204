package models

import "testing"

func TestEquipmentConstants(t *testing.T) {
	if EquipmentNone != "none" || EquipmentAny != "any" {
		t.Fatalf("unexpected bodyweight tags: %q %q", EquipmentNone, EquipmentAny)
	}
	if EquipmentDumbbells != "dumbbells" || EquipmentResistance != "resistance" {
		t.Fatalf("unexpected equipment tags: %q %q", EquipmentDumbbells, EquipmentResistance)
	}
}

func TestExerciseUses(t *testing.T) {
	ex := Exercise{Name: "Calf Raises", Equipment: []Equipment{EquipmentNone, EquipmentDumbbells}}
	if !ex.Uses(EquipmentDumbbells) {
		t.Fatalf("expected dumbbells tag")
	}
	if ex.Uses(EquipmentAny) {
		t.Fatalf("did not expect any tag")
	}
	if got := ex.EquipmentLabel(); got != "none, dumbbells" {
		t.Fatalf("EquipmentLabel = %q", got)
	}
}

func TestExerciseZeroValue(t *testing.T) {
	var ex Exercise
	if ex.Uses(EquipmentNone) {
		t.Fatalf("zero exercise should not use any equipment")
	}
	if ex.EquipmentLabel() != "" {
		t.Fatalf("expected empty label")
	}
}

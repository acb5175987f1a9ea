package beans

import (
	"errors"
	"testing"
)

func TestCatalog_AddValidation(t *testing.T) {
	catalog := NewCatalog()

	if err := catalog.Add(Definition{}, Blueprint{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for nil type, got %v", err)
	}

	mismatched := Blueprint{Type: testGearboxType}
	if err := catalog.Add(Definition{Type: testEngineType}, mismatched); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for mismatched blueprint, got %v", err)
	}
}

func TestCatalog_RejectsDuplicateDefinition(t *testing.T) {
	catalog := NewCatalog()

	if err := catalog.Add(Definition{Type: testEngineType, Singleton: true}, engineBlueprint("a")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	err := catalog.Add(Definition{Type: testEngineType, Singleton: true}, engineBlueprint("b"))
	if !errors.Is(err, ErrDuplicateBlueprint) {
		t.Errorf("Expected ErrDuplicateBlueprint, got %v", err)
	}

	// A different qualifier for the same type is a separate component.
	if err := catalog.Add(Definition{Type: testEngineType, Singleton: true, Qualifier: "sport"}, engineBlueprint("sport")); err != nil {
		t.Errorf("Expected qualified sibling to register, got %v", err)
	}
}

func TestCatalog_ScanPreservesRegistrationOrder(t *testing.T) {
	catalog := NewCatalog()

	_ = catalog.Add(Definition{Type: testEngineType, Singleton: true}, engineBlueprint("stock"))
	_ = catalog.Add(Definition{Type: testGearboxType, Singleton: true}, gearboxBlueprint())
	_ = catalog.Add(Definition{Type: testRadioType, Singleton: false}, radioBlueprint())

	definitions, err := catalog.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(definitions) != 3 {
		t.Fatalf("Expected 3 definitions, got %d", len(definitions))
	}
	if definitions[0].Type != testEngineType ||
		definitions[1].Type != testGearboxType ||
		definitions[2].Type != testRadioType {
		t.Error("Expected definitions in registration order")
	}
}

func TestCatalog_DefinitionLookup(t *testing.T) {
	catalog := NewCatalog()
	_ = catalog.Add(Definition{Type: testEngineType, Singleton: true, Qualifier: "sport"}, engineBlueprint("sport"))

	if _, ok := catalog.Definition(testEngineType, "sport"); !ok {
		t.Error("Expected the qualified definition to be found")
	}
	if _, ok := catalog.Definition(testEngineType, DefaultQualifier); ok {
		t.Error("Expected no default definition for this type")
	}
	if _, ok := catalog.Definition(testGearboxType, DefaultQualifier); ok {
		t.Error("Expected no definition for an unknown type")
	}
}

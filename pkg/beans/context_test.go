package beans

import (
	"errors"
	"sync"
	"testing"
)

func TestApplicationContext_RefreshConstructsSingletons(t *testing.T) {
	catalog := NewCatalog()
	_ = catalog.Add(Definition{Type: testEngineType, Singleton: true}, engineBlueprint("stock"))
	_ = catalog.Add(Definition{Type: testGearboxType, Singleton: true}, gearboxBlueprint())
	_ = catalog.Add(Definition{Type: testRadioType, Singleton: false}, radioBlueprint())

	ctx := NewApplicationContext(catalog)
	if err := ctx.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if ok, _ := ctx.ContainsBean(testEngineType); !ok {
		t.Error("Expected the engine singleton after refresh")
	}
	if ok, _ := ctx.ContainsBean(testGearboxType); !ok {
		t.Error("Expected the gearbox singleton after refresh")
	}
	if ok, _ := ctx.ContainsBean(testRadioType); ok {
		t.Error("Expected the transient definition to stay unconstructed")
	}

	gearbox, err := ctx.GetBean(testGearboxType)
	if err != nil {
		t.Fatalf("GetBean failed: %v", err)
	}
	engine, err := ctx.GetBean(testEngineType)
	if err != nil {
		t.Fatalf("GetBean failed: %v", err)
	}
	if gearbox.(*testGearbox).engine != engine.(*testEngine) {
		t.Error("Expected the gearbox to be wired with the engine singleton")
	}
}

func TestApplicationContext_SecondRefreshIsANoOp(t *testing.T) {
	catalog := NewCatalog()
	constructed := 0
	bp := Blueprint{
		Type: testEngineType,
		Constructors: []Constructor{{
			New: func(args []any) (any, error) {
				constructed++
				return &testEngine{}, nil
			},
		}},
	}
	_ = catalog.Add(Definition{Type: testEngineType, Singleton: true}, bp)

	ctx := NewApplicationContext(catalog)
	if err := ctx.Refresh(); err != nil {
		t.Fatalf("First Refresh failed: %v", err)
	}
	if err := ctx.Refresh(); err != nil {
		t.Fatalf("Second Refresh failed: %v", err)
	}

	if constructed != 1 {
		t.Errorf("Expected exactly one construction across refreshes, got %d", constructed)
	}
}

func TestApplicationContext_ConcurrentRefresh(t *testing.T) {
	catalog := NewCatalog()
	var mu sync.Mutex
	constructed := 0
	bp := Blueprint{
		Type: testEngineType,
		Constructors: []Constructor{{
			New: func(args []any) (any, error) {
				mu.Lock()
				constructed++
				mu.Unlock()
				return &testEngine{}, nil
			},
		}},
	}
	_ = catalog.Add(Definition{Type: testEngineType, Singleton: true}, bp)

	ctx := NewApplicationContext(catalog)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ctx.Refresh(); err != nil {
				t.Errorf("Concurrent Refresh failed: %v", err)
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if constructed != 1 {
		t.Errorf("Expected one construction under racing refreshes, got %d", constructed)
	}
}

func TestApplicationContext_FailedRefreshKeepsEarlierBeans(t *testing.T) {
	catalog := NewCatalog()
	_ = catalog.Add(Definition{Type: testEngineType, Singleton: true}, engineBlueprint("stock"))

	// The second singleton needs a radio that nothing provides.
	broken := Blueprint{
		Type: testCarType,
		Constructors: []Constructor{{
			Inject: true,
			Params: []Dependency{{Type: testRadioType}},
			New:    func(args []any) (any, error) { return &testCar{}, nil },
		}},
	}
	_ = catalog.Add(Definition{Type: testCarType, Singleton: true}, broken)

	ctx := NewApplicationContext(catalog)

	err := ctx.Refresh()
	if !errors.Is(err, ErrBeanNotFound) {
		t.Fatalf("Expected ErrBeanNotFound from refresh, got %v", err)
	}

	// No rollback: the engine constructed before the failure stays.
	if ok, _ := ctx.ContainsBean(testEngineType); !ok {
		t.Error("Expected the earlier singleton to remain registered")
	}
	if ok, _ := ctx.ContainsBean(testCarType); ok {
		t.Error("Expected the failing singleton to stay unregistered")
	}
}

func TestApplicationContext_GetBeanPropagatesNotFound(t *testing.T) {
	ctx := NewApplicationContext(NewCatalog())

	if _, err := ctx.GetBean(testEngineType); !errors.Is(err, ErrBeanNotFound) {
		t.Errorf("Expected ErrBeanNotFound, got %v", err)
	}
	if _, err := ctx.GetBeanNamed(testEngineType, "sport"); !errors.Is(err, ErrBeanNotFound) {
		t.Errorf("Expected ErrBeanNotFound, got %v", err)
	}
	if _, err := ctx.GetBean(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

func TestApplicationContext_QualifiedLookup(t *testing.T) {
	catalog := NewCatalog()
	_ = catalog.Add(Definition{Type: testEngineType, Singleton: true}, engineBlueprint("stock"))
	_ = catalog.Add(Definition{Type: testEngineType, Singleton: true, Qualifier: "sport"}, engineBlueprint("sport"))

	ctx := NewApplicationContext(catalog)
	if err := ctx.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	stock, err := ctx.GetBean(testEngineType)
	if err != nil {
		t.Fatalf("GetBean failed: %v", err)
	}
	sport, err := ctx.GetBeanNamed(testEngineType, "sport")
	if err != nil {
		t.Fatalf("GetBeanNamed failed: %v", err)
	}
	if stock == sport {
		t.Error("Expected distinct instances per qualifier")
	}

	qualifiers, err := ctx.Registry().Qualifiers(testEngineType)
	if err != nil {
		t.Fatalf("Qualifiers failed: %v", err)
	}
	if len(qualifiers) != 2 {
		t.Errorf("Expected two qualifiers, got %v", qualifiers)
	}
}

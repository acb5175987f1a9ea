package beans

import "github.com/shuldan/ioc/pkg/errors"

var newRegistryCode = errors.WithPrefix("IOC_REGISTRY")
var newFactoryCode = errors.WithPrefix("IOC_FACTORY")
var newCatalogCode = errors.WithPrefix("IOC_CATALOG")

var (
	ErrInvalidArgument = newRegistryCode().New("invalid argument: {{.reason}}")
	ErrBeanNotFound    = newRegistryCode().New("no bean found for type {{.type}} and qualifier {{.qualifier}}")

	ErrAmbiguousConstructor = newFactoryCode().New("multiple constructors marked for injection in {{.type}}")
	ErrNoViableConstructor  = newFactoryCode().New("no injectable constructor and no zero-argument constructor for {{.type}}")
	ErrCyclicDependency     = newFactoryCode().New("cyclic dependency detected for type {{.type}}")
	ErrInvalidTarget        = newFactoryCode().New("cannot inject into field {{.field}} of {{.type}}: {{.reason}}")
	ErrBeanCreation         = newFactoryCode().New("unable to instantiate bean of type {{.type}}")

	ErrNoBlueprint        = newCatalogCode().New("no blueprint registered for type {{.type}}")
	ErrDuplicateBlueprint = newCatalogCode().New("blueprint already registered for type {{.type}} and qualifier {{.qualifier}}")
)

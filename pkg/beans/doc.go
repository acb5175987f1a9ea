// Package beans implements a typed, qualifier-aware inversion-of-control
// container.
//
// Components are described by a Definition (type, singleton flag, optional
// qualifier) and a Blueprint carrying explicit injection metadata:
// constructors, fields and setters, each with its own dependency types and
// qualifiers. A Catalog collects both and acts as the scanner; the Factory
// builds fully wired instances from definitions, resolving dependencies
// through the Registry and detecting cycles across one construction call
// chain; the ApplicationContext ties the three together and constructs
// every singleton on Refresh.
package beans

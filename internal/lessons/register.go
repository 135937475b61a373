package lessons

import (
	"github.com/aretw0/ferrule/pkg/domain"
	"github.com/aretw0/ferrule/pkg/registry"
)

var procedures = []struct {
	id  string
	run domain.LessonFunc
}{
	{"basics.variables", Variables},
	{"basics.arithmetic", Arithmetic},
	{"basics.conditionals", Conditionals},
	{"basics.loops", Loops},
	{"arrays.indexing", Arrays},
	{"ownership.deep-dive", Ownership},
	{"borrowing.basics", Borrowing},
	{"ownership.functions", FunctionsOwnership},
	{"borrowing.functions", BorrowingFunctions},
	{"structs.ownership", Structs},
	{"vectors.ownership", Vectors},
	{"enums.matching", Enums},
	{"option.type", OptionType},
	{"result.type", ResultType},
	{"iterators.combinators", Iterators},
	{"collections.data-structures", Collections},
}

// Register binds every lesson procedure to its catalog id.
func Register(reg *registry.Registry) {
	for _, p := range procedures {
		reg.Register(p.id, p.run)
	}
}

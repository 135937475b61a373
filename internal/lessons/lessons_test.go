package lessons

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/ferrule/pkg/catalog"
	"github.com/aretw0/ferrule/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(fn func(io.Writer)) string {
	var buf bytes.Buffer
	fn(&buf)
	return buf.String()
}

func TestLessonOutput(t *testing.T) {
	tests := []struct {
		name string
		run  func(io.Writer)
		want []string
	}{
		{"variables", Variables, []string{
			"Immutable x = 5\n",
			"Mutable y (before) = 10\n",
			"Mutable y (after += 3) = 13\n",
			"Explicitly typed z: int32 = 20\n",
			"Temperature is now 35 degrees Celsius.\n",
		}},
		{"arithmetic", Arithmetic, []string{
			"a = 10, b = 3\n",
			"sum (a + b) = 13\n",
			"difference (a - b) = 7\n",
			"product (a * b) = 30\n",
			"division (a / b) = 3\n",
			"remainder (a % b) = 1\n",
		}},
		{"conditionals", Conditionals, []string{
			"Temperature is 40 degrees\nIt's a hot day! 🔥\n",
		}},
		{"loops", Loops, []string{
			"Count is: 0\n", "Count is: 4\n",
			"This will run forever unless we break.\nThis will run forever unless we break.\nBreaking the loop now.\n",
			"i = 1\n", "i = 6\n",
			"even i = 2\neven i = 4\neven i = 6\neven i = 8\n",
		}},
		{"arrays", Arrays, []string{
			"First number: 10\n", "Fifth number: 50\n",
			"Copied and modified: m = 11\n",
			"Original unchanged: numbers[0] = 10\n",
			"k = 50\n",
		}},
		{"ownership", Ownership, []string{
			"a = 5, b = 5 (both valid, copy occurred)\n",
			"s2 = test ownership\n",
			"s1 is gone: get: value used after move\n",
			"arr1 = [1, 2, 3, 4, 5], arr2 = [1, 2, 3, 4, 5]\n",
			"  s = three\n",
			`Array still valid: ["one", "two", "three"]` + "\n",
			"  st = one\n",
			"Array moved out: true\n",
		}},
		{"borrowing", Borrowing, []string{
			"borrow2 = Hello, Rust!\n",
			"Exclusive borrow refused: borrow_mut: already borrowed (2 shared references live)\n",
			"Shared borrow refused: borrow: already mutably borrowed (exclusive reference live)\n",
			"After first mutable borrow: Hello, world!\n",
			"After second mutable borrow: Hello, world! Welcome to Rust!\n",
			"Modified array: [11, 12, 13, 14, 15]\n",
			"arr_test[0] = 13\n",
		}},
		{"functions and ownership", FunctionsOwnership, []string{
			"x = 5, y = 6 (x still usable - Copy type)\n",
			"Inside function: Hello\ns2 = Hello\n",
			"s still valid: false\n",
		}},
		{"borrowing with functions", BorrowingFunctions, []string{
			"Length = 12\nOriginal still valid: Hello, Rust!\n",
			"After first append: Hi, world!\n",
			"After second append: Hi, world!, world!\n",
			"Through second_borrow: Hi, world!, world!\n",
		}},
		{"structs", Structs, []string{
			"Name: Alice, Age: 30\n",
			"Name: Alice, Age: 31\n",
		}},
		{"vectors", Vectors, []string{
			"  one modified\n",
			`After push: ["one modified", "two modified", "three modified", "four"]` + "\n",
			"Before modifications: [1, 2, 3, 4, 5]\n",
			"After push and modify: [10, 2, 3, 4, 5, 6]\n",
			"Slice [1..4]: [2, 3, 4]\n",
			"Owner write refused while the slice is live: set: already borrowed (1 shared references live)\n",
			"After owner modification: [10, 2, 100, 4, 5, 6]\n",
			"Mutable slice [0..3]: [10, 20, 100]\n",
			"Full vector after slice modification: [10, 20, 100, 4, 5, 6]\n",
			"📚 SUMMARY: The Borrowing Law\n",
			"│ Both at the same time              │   ❌    │\n",
		}},
		{"enums", Enums, []string{
			"You are heading East!\n",
			"⬆️  North - Cold regions ahead\n⬇️  South - Warm weather coming\n➡️  East - Sunrise direction\n⬅️  West - Sunset direction\n",
			"Opposite of North is South\nOpposite of East is West\n",
			"Quit: No data, just a signal to exit\n",
			"Move: to position (10, 20)\n",
			"Write: message = 'Hello!'\n",
			"ChangeColor: RGB(255, 128, 0)\n",
			"Debug: Move { x: 10, y: 20 }\n",
			`Debug: Write("Hello!")` + "\n",
		}},
		{"option", OptionType, []string{
			"Found even number: 6\nNo even number found\n",
			"some_value.unwrap_or(0) = 5\n",
			"no_value.unwrap_or(0) = 0\n",
			"some_value.map(|x| x * 2) = Some(10)\n",
			"no_value.map(|x| x * 2) = None\n",
			`Chained maps: Some("25")` + "\n",
			"Some(10).and_then(half_if_even) = Some(5)\n",
			"Some(11).and_then(half_if_even) = None\n",
			"None.and_then(half_if_even) = None\n",
			"10.0 / 2.0 = 5\nCannot divide by zero!\n",
			"(10.0 / 2.0) * 2 = 10\n",
		}},
		{"result", ResultType, []string{
			"10 / 2 = 5\nError: Cannot divide by zero\n",
			`parse_and_double("5") = Ok(10)` + "\n",
			`parse_and_double("abc") = Err("Failed to parse 'abc'")` + "\n",
			"safe_divide(16, 2).and_then(safe_sqrt) = Ok(2.8284271247461903)\n",
			`safe_divide(16, 0).and_then(safe_sqrt) = Err("Cannot divide by zero")` + "\n",
			`process_number("5") = Ok(50)` + "\n",
			`process_number("-3") = Err("Number must be positive")` + "\n",
			`process_number("abc") = Err("Invalid number: abc")` + "\n",
			`  "8" → Ok("Result: 4.00")` + "\n",
			`  "abc" → Err("Parse failed")` + "\n",
		}},
		{"iterators", Iterators, []string{
			"  v still valid: [1, 2, 3]\n",
			"  v2 after modification: [11, 12, 13]\n",
			"  v3 consumed: get: value used after move\n",
			"Squared:  [1, 4, 9]\n",
			`As strings: ["num_1", "num_2", "num_3"]` + "\n",
			"Evens:    [2, 4, 6]\n",
			"Greater than 3: [4, 5, 6]\n",
			"Chained: [1, 2, 3, 4, 5, 6]\n",
			"Evens × 10: [20, 40, 60]\n",
			`Complex pipeline: ["val=9", "val=25"]` + "\n",
			"  [0] = apple\n  [1] = banana\n  [2] = cherry\n",
			"  1. apple\n  2. banana\n  3. cherry\n",
		}},
		{"collections", Collections, []string{
			"Vector: [10, 20, 30]\n",
			"Modified Vector: [15, 25, 35]\n",
			"String: Hello, world!\n",
			`HashMap: {"Alice": 50, "Bob": 60}` + "\n",
			"Alice's score: 50\n",
			"Alice: 50\nBob: 60\n",
			"1 already present, ignored\n",
			"HashSet: {1, 2}\n",
			"VecDeque: [0, 1, 2]\n",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := capture(tt.run)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestLessonsStartWithContent(t *testing.T) {
	for _, p := range procedures {
		out := capture(p.run)
		assert.False(t, strings.HasPrefix(out, "\n"), "%s starts with a blank line", p.id)
		assert.NotContains(t, out, "LESSON", "%s prints its own banner", p.id)
	}
}

func TestVectors_EndsWithBorrowingLaw(t *testing.T) {
	out := capture(Vectors)
	assert.True(t, strings.HasSuffix(out, "• Thread safety without garbage collection\n\n"))
	assert.Equal(t, 1, strings.Count(out, "📚 SUMMARY: The Borrowing Law"))
}

func TestClassifyTemperature(t *testing.T) {
	tests := []struct {
		celsius int
		want    Weather
	}{
		{40, Hot},
		{31, Hot},
		{30, Nice},
		{20, Nice},
		{15, Nice},
		{14, Cold},
		{-5, Cold},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyTemperature(tt.celsius), "classifyTemperature(%d)", tt.celsius)
	}
	assert.Equal(t, "The weather is nice. 🌤️", Nice.String())
}

func TestRegister_MatchesCatalog(t *testing.T) {
	reg := registry.NewRegistry()
	Register(reg)

	c, err := catalog.Load()
	require.NoError(t, err)

	var ids []string
	for _, e := range c.Entries() {
		ids = append(ids, e.ID)
		_, err := reg.Lookup(e.ID)
		assert.NoError(t, err, "no procedure for %s", e.ID)
	}
	assert.Equal(t, ids, reg.IDs())
}

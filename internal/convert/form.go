package convert

import "sync"

// Inputs holds the parsed numeric values of the form.
type Inputs struct {
	BaseSizePx float64
	Percent    float64
}

// Submission is the outcome of submitting the form.
type Submission struct {
	Inputs Inputs
	Value  string // formatted pixel value without unit
}

// ClipboardText returns what is written to the clipboard for the submission.
func (s Submission) ClipboardText() string {
	return WithUnit(s.Value)
}

// Form keeps the derived pixel value in step with the two raw input fields.
// Observers registered with OnChange are called synchronously, on the caller's
// goroutine, after every input change.
type Form struct {
	mu        sync.Mutex
	baseSize  string
	percent   string
	derived   string
	observers []func(string)
}

// NewForm creates a form with empty inputs. The derived value starts at "0.0".
func NewForm() *Form {
	return &Form{derived: PercentToPx(0, 0)}
}

// OnChange registers fn to receive the derived value whenever it is
// recomputed. fn is called once immediately with the current value.
func (f *Form) OnChange(fn func(derived string)) {
	f.mu.Lock()
	f.observers = append(f.observers, fn)
	derived := f.derived
	f.mu.Unlock()
	fn(derived)
}

// SetBaseSize updates the base font size field (in px).
func (f *Form) SetBaseSize(raw string) {
	f.update(func() { f.baseSize = raw })
}

// SetPercent updates the relative value field (in percent).
func (f *Form) SetPercent(raw string) {
	f.update(func() { f.percent = raw })
}

// Raw returns the current unparsed field contents.
func (f *Form) Raw() (baseSize, percent string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.baseSize, f.percent
}

// Inputs returns the parsed field values.
func (f *Form) Inputs() Inputs {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inputs()
}

// Derived returns the pixel value computed from the latest inputs.
func (f *Form) Derived() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.derived
}

// Submit recomputes the value from the current inputs and returns it.
func (f *Form) Submit() Submission {
	f.mu.Lock()
	in := f.inputs()
	f.derived = PercentToPx(in.Percent, in.BaseSizePx)
	sub := Submission{Inputs: in, Value: f.derived}
	observers := f.snapshot()
	f.mu.Unlock()

	notify(observers, sub.Value)
	return sub
}

func (f *Form) update(set func()) {
	f.mu.Lock()
	set()
	in := f.inputs()
	f.derived = PercentToPx(in.Percent, in.BaseSizePx)
	derived := f.derived
	observers := f.snapshot()
	f.mu.Unlock()

	notify(observers, derived)
}

func (f *Form) inputs() Inputs {
	return Inputs{
		BaseSizePx: ParseNumber(f.baseSize),
		Percent:    ParseNumber(f.percent),
	}
}

func (f *Form) snapshot() []func(string) {
	out := make([]func(string), len(f.observers))
	copy(out, f.observers)
	return out
}

func notify(observers []func(string), derived string) {
	for _, fn := range observers {
		fn(derived)
	}
}

package filter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/s0up4200/swire/signalwire"
)

func testNumbers() []Number {
	return []Number{
		{
			Source:       SourceOwned,
			ID:           "pn-1",
			Number:       "+12065550100",
			Name:         "Support line",
			NumberType:   "longcode",
			Capabilities: []string{"voice", "sms"},
			CreatedAt:    time.Now().AddDate(0, 0, -40),
		},
		{
			Source:       SourceAvailable,
			Number:       "+14255550199",
			Name:         "(425) 555-0199",
			Region:       "WA",
			RateCenter:   "BELLEVUE",
			Capabilities: []string{"voice"},
		},
		{
			Source:       SourceAvailable,
			Number:       "+442071838750",
			Region:       "London",
			IsoCountry:   "GB",
			Capabilities: []string{"voice", "sms", "mms"},
			Beta:         true,
		},
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasCapability("sms")`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasCapability("unclosed`,
			wantErr:    true,
		},
		{
			name:       "unknown field",
			expression: `Colour == "red"`,
			wantErr:    true,
		},
		{
			name:       "non boolean result",
			expression: `Name`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `hasCapability("sms") and areaCode() in ["206", "425"] and not Beta`,
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error but got none")
				}
				var compErr *CompilationError
				if !errors.As(err, &compErr) {
					t.Errorf("expected CompilationError, got %T", err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if filter.Expression() != strings.TrimSpace(tt.expression) {
				t.Errorf("Expression() = %q", filter.Expression())
			}
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	tests := []struct {
		expression string
		want       []string
	}{
		{`hasCapability("sms")`, []string{"+12065550100", "+442071838750"}},
		{`hasCapability("SMS") and not Beta`, []string{"+12065550100"}},
		{`areaCode() == "425"`, []string{"+14255550199"}},
		{`startsWith(Number, "+44")`, []string{"+442071838750"}},
		{`contains(Name, "support")`, []string{"+12065550100"}},
		{`isOwned() and daysSince(CreatedAt) > 30`, []string{"+12065550100"}},
		{`Source == "available" and Region == "WA"`, []string{"+14255550199"}},
		{`len(Capabilities) == 3`, []string{"+442071838750"}},
		{`lower(RateCenter) == "bellevue"`, []string{"+14255550199"}},
		{`Record.IsoCountry == "GB"`, []string{"+442071838750"}},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}

			var got []string
			for _, n := range Apply(filter, testNumbers()) {
				got = append(got, n.Number)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyNilFilter(t *testing.T) {
	numbers := testNumbers()
	if got := Apply(nil, numbers); len(got) != len(numbers) {
		t.Errorf("nil filter kept %d of %d numbers", len(got), len(numbers))
	}
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isTollFree": func(number string) bool {
			return strings.HasPrefix(number, "+1800") || strings.HasPrefix(number, "+1888")
		},
	}))

	filter, err := compiler.Compile(`isTollFree(Number)`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !filter.Evaluate(Number{Number: "+18005550100"}) {
		t.Error("expected toll-free number to match")
	}
	if filter.Evaluate(Number{Number: "+12065550100"}) {
		t.Error("expected local number not to match")
	}
}

func TestRunReportsEvaluationError(t *testing.T) {
	compiler := NewExprCompiler()
	filter, err := compiler.Compile(`Capabilities[5] == "fax"`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	number := Number{Number: "+12065550100", Capabilities: []string{"voice"}}
	_, err = filter.Run(number)

	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
	if evalErr.Number != "+12065550100" {
		t.Errorf("Number = %q", evalErr.Number)
	}
	if filter.Evaluate(number) {
		t.Error("a failing evaluation must not match")
	}
}

func TestFilterManager(t *testing.T) {
	manager := NewManager()

	err := manager.RegisterFilters(map[string]string{
		"textable": `hasCapability("sms")`,
		"seattle":  `areaCode() == "206"`,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if names := manager.ListFilters(); strings.Join(names, ",") != "seattle,textable" {
		t.Errorf("ListFilters() = %v", names)
	}

	preset, err := manager.Resolve("textable")
	if err != nil {
		t.Fatalf("resolve preset: %v", err)
	}
	if preset.Expression() != `hasCapability("sms")` {
		t.Errorf("preset expression = %q", preset.Expression())
	}

	inline, err := manager.Resolve(`Beta`)
	if err != nil {
		t.Fatalf("resolve inline: %v", err)
	}
	if got := Apply(inline, testNumbers()); len(got) != 1 {
		t.Errorf("inline filter matched %d numbers", len(got))
	}

	err = manager.RegisterFilters(map[string]string{"broken": `hasCapability(`})
	if err == nil {
		t.Fatal("expected compile error")
	}
	if _, ok := manager.GetFilter("broken"); ok {
		t.Error("broken filter must not be registered")
	}
}

func TestCacheEffectiveness(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`hasCapability("sms")`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, _ := compiler.Compile(`  hasCapability("sms")  `)
	if first != second {
		t.Error("expected cached filter to be reused")
	}

	_, _ = compiler.Compile(`Beta`)
	_, _ = compiler.Compile(`not Beta`)
	if compiler.Size() != 2 {
		t.Errorf("Size() = %d, want 2", compiler.Size())
	}

	compiler.Clear()
	if compiler.Size() != 0 {
		t.Errorf("Size() after Clear = %d", compiler.Size())
	}
}

func TestConverters(t *testing.T) {
	yes := true
	lata := "674"
	created := "2025-01-13T10:00:00Z"

	owned := OwnedNumbers(&signalwire.OwnedPhoneNumbersResponse{Data: []signalwire.OwnedPhoneNumber{{
		ID:           "pn-1",
		Number:       "+12065550100",
		Capabilities: []string{"Voice", "SMS"},
		CreatedAt:    &created,
	}}})
	if len(owned) != 1 || owned[0].Source != SourceOwned || owned[0].CreatedAt.Year() != 2025 {
		t.Errorf("unexpected owned conversion: %+v", owned)
	}
	if owned[0].Capabilities[1] != "sms" {
		t.Errorf("capabilities not lowercased: %v", owned[0].Capabilities)
	}

	available := AvailableNumbers(&signalwire.AvailablePhoneNumbersResponse{AvailablePhoneNumbers: []signalwire.AvailablePhoneNumber{{
		PhoneNumber:  "+14255550199",
		Lata:         &lata,
		Capabilities: signalwire.Capabilities{Voice: &yes, SMS: &yes},
	}}})
	if available[0].Lata != "674" || strings.Join(available[0].Capabilities, ",") != "voice,sms" {
		t.Errorf("unexpected available conversion: %+v", available[0])
	}
	if available[0].AreaCode() != "425" {
		t.Errorf("AreaCode() = %q", available[0].AreaCode())
	}

	sub := SubprojectNumbers(&signalwire.SubprojectPhoneNumbersResponse{IncomingPhoneNumbers: []signalwire.SubprojectPhoneNumber{{
		SID:          "PN1",
		PhoneNumber:  "+442071838750",
		Capabilities: signalwire.Capabilities{MMS: &yes},
	}}})
	if sub[0].ID != "PN1" || sub[0].AreaCode() != "" || sub[0].Capabilities[0] != "mms" {
		t.Errorf("unexpected subproject conversion: %+v", sub[0])
	}
}

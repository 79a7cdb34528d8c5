package extract

import "testing"

func TestParseBlock_LabeledLines(t *testing.T) {
	block := "Company: Acme\nRole: Engineer\nLocation: Remote"
	rec, ok := ParseBlock(block)
	if !ok {
		t.Fatalf("expected a record")
	}
	if rec.Company != "Acme" || rec.Role != "Engineer" || rec.Location != "Remote" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParseBlock_LabelAliases(t *testing.T) {
	block := "employer: Globex\nPOSITION: Analyst\ncity: Ottawa"
	rec, ok := ParseBlock(block)
	if !ok {
		t.Fatalf("expected a record")
	}
	if rec.Company != "Globex" || rec.Role != "Analyst" || rec.Location != "Ottawa" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParseBlock_LabelBeatsInlinePattern(t *testing.T) {
	block := "Company: Acme\nAcme Widgets - Engineer - Remote"
	rec, ok := ParseBlock(block)
	if !ok {
		t.Fatalf("expected a record")
	}
	if rec.Company != "Acme" {
		t.Fatalf("explicit label must win, got company %q", rec.Company)
	}
	// the dash split still fills the fields the labels left open
	if rec.Role != "Engineer" || rec.Location != "Remote" {
		t.Fatalf("dash split should fill remaining fields: %+v", rec)
	}
}

func TestParseBlock_DashTriple(t *testing.T) {
	for _, block := range []string{
		"Acme - Engineer - Toronto",
		"Acme – Engineer – Toronto",
		"Acme—Engineer—Toronto",
	} {
		rec, ok := ParseBlock(block)
		if !ok {
			t.Fatalf("expected a record for %q", block)
		}
		if rec.Company != "Acme" || rec.Role != "Engineer" || rec.Location != "Toronto" {
			t.Fatalf("unexpected record for %q: %+v", block, rec)
		}
	}
}

func TestParseBlock_RoleAtCompany(t *testing.T) {
	rec, ok := ParseBlock("Staff Engineer at Initech (Austin)")
	if !ok {
		t.Fatalf("expected a record")
	}
	if rec.Role != "Staff Engineer" || rec.Company != "Initech" || rec.Location != "Austin" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestParseBlock_RoleAtCompanyNoLocation(t *testing.T) {
	rec, ok := ParseBlock("Engineer at Acme")
	if !ok {
		t.Fatalf("expected a record")
	}
	if rec.Role != "Engineer" || rec.Company != "Acme" || rec.Location != "" {
		t.Fatalf("location must stay unresolved: %+v", rec)
	}
}

func TestParseBlock_NoRoleNoRecord(t *testing.T) {
	if _, ok := ParseBlock("Company: Acme\nsome unrelated prose"); ok {
		t.Fatalf("a block without a resolvable role must yield no record")
	}
}

func TestParseBlock_UnresolvedStaysEmpty(t *testing.T) {
	rec, ok := ParseBlock("Role: Engineer")
	if !ok {
		t.Fatalf("expected a record")
	}
	if rec.Company != "" || rec.Location != "" {
		t.Fatalf("unresolved fields must be empty, not the sentinel: %+v", rec)
	}
}

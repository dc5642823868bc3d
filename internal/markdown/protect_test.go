package markdown

import (
	"strings"
	"testing"
)

func TestProtectExtractsFences(t *testing.T) {
	input := "before\n```go\nfunc main() {}\n```\nafter"
	prot, diags := protect(splitLines(input), DefaultConfig().Code)

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(prot.arena) != 1 {
		t.Fatalf("expected 1 block, got %d", len(prot.arena))
	}
	if got := len(prot.lines); got != 3 {
		t.Fatalf("expected 3 lines after protection, got %d: %v", got, prot.lines)
	}
	if !isPlaceholder(prot.lines[1]) {
		t.Errorf("middle line should be a placeholder, got %q", prot.lines[1])
	}
	if got := prot.src; got[0] != 1 || got[1] != 2 || got[2] != 5 {
		t.Errorf("source line map wrong: %v", got)
	}

	block := prot.arena[0]
	if block.info != "go" || block.char != '`' || block.runLen != 3 {
		t.Errorf("unexpected block fields: %+v", block)
	}
	if len(block.content) != 1 || block.content[0] != "func main() {}" {
		t.Errorf("content not verbatim: %v", block.content)
	}
}

func TestProtectUnclosedFence(t *testing.T) {
	input := "text\n```\ncode to the end"
	prot, diags := protect(splitLines(input), DefaultConfig().Code)

	if len(diags) != 1 || diags[0].Severity != SeverityWarning || diags[0].Line != 2 {
		t.Fatalf("expected unclosed-fence warning at line 2, got %v", diags)
	}
	block := prot.arena[0]
	if block.closed {
		t.Error("block should be marked unclosed")
	}
	if len(block.content) != 1 {
		t.Errorf("content should extend to end of document: %v", block.content)
	}
}

func TestProtectCloseNeedsRunLength(t *testing.T) {
	// A shorter run of the same character does not close the fence.
	input := "````\n```\ninner\n````"
	prot, _ := protect(splitLines(input), DefaultConfig().Code)
	if len(prot.arena) != 1 {
		t.Fatalf("expected 1 block, got %d", len(prot.arena))
	}
	block := prot.arena[0]
	if !block.closed {
		t.Fatal("block should be closed by the final four-backtick line")
	}
	if len(block.content) != 2 {
		t.Errorf("expected inner lines kept verbatim, got %v", block.content)
	}
}

func TestProtectTildeFence(t *testing.T) {
	input := "~~~python\nprint('hi')\n~~~"
	prot, _ := protect(splitLines(input), DefaultConfig().Code)
	if len(prot.arena) != 1 || prot.arena[0].char != '~' {
		t.Fatalf("tilde fence not recognized: %+v", prot.arena)
	}
}

func TestRenderKeepsOriginalBytesWhenStyleMatches(t *testing.T) {
	input := "```go\nx := 1\n```"
	prot, _ := protect(splitLines(input), DefaultConfig().Code)
	got := prot.arena[0].render(DefaultConfig().Code)
	want := []string{"```go", "x := 1", "```"}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRenderConvertsFenceStyle(t *testing.T) {
	cfg := CodeConfig{FenceStyle: "~~~"}
	prot, _ := protect(splitLines("```go\nx\n```"), cfg)
	got := prot.arena[0].render(cfg)
	want := []string{"~~~go", "x", "~~~"}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRenderExtendsRunPastContentCollision(t *testing.T) {
	// Converting to tildes must not let a tilde line inside the content
	// close the block early on the next pass.
	cfg := CodeConfig{FenceStyle: "~~~"}
	prot, _ := protect(splitLines("```\n~~~\n```"), cfg)
	got := prot.arena[0].render(cfg)
	if got[0] != "~~~~" {
		t.Errorf("opening run should be extended past the content run, got %q", got[0])
	}
	if got[1] != "~~~" {
		t.Errorf("content must stay verbatim, got %q", got[1])
	}
	if got[2] != "~~~~" {
		t.Errorf("closing run should match the opening run, got %q", got[2])
	}
}

func TestFenceOpenRejectsBacktickInfoWithBacktick(t *testing.T) {
	if _, _, _, _, ok := fenceOpen("``` foo `bar`"); ok {
		t.Error("backtick fence with backtick info string should not open a block")
	}
	if _, _, _, _, ok := fenceOpen("~~~ foo `bar`"); !ok {
		t.Error("tilde fence info strings are unrestricted")
	}
}

package extract

import (
	"reflect"
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

const page = `<!doctype html>
<html>
  <head><title>作业详情</title></head>
  <body>
    <div class="questionLi">
      <h3 class="mark_name">1. 第一题</h3>
      <ul class="mark_letter"><li>A. 甲</li><li>B. 乙</li></ul>
      <div class="mark_key"><span class="rightAnswerContent">A</span></div>
    </div>
    <div style="display: none">
      <div class="questionLi"><h3 class="mark_name">1. 旧题</h3></div>
    </div>
    <div class="questionLi" hidden><h3 class="mark_name">9. 隐藏</h3></div>
    <div class="questionLi" style="position:fixed"><h3 class="mark_name">9. 浮层</h3></div>
    <div class="questionLi">
      <h3 class="mark_name">2. 第二题</h3>
      <ul class="mark_letter"><li>对</li><li>错</li></ul>
      <span class="element-invisible-hidden">正确答案：错</span>
    </div>
  </body>
</html>`

func TestCollectAll_VisibleContainersInOrder(t *testing.T) {
	got := CollectAll(Parse([]byte(page), ""))
	want := []Question{
		{Stem: "第一题", Options: []Option{{"A", "甲"}, {"B", "乙"}}, Answer: "A"},
		{Stem: "第二题", Options: []Option{{"A", "对"}, {"B", "错"}}, Answer: "B"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("collected=%+v\nwant=%+v", got, want)
	}
}

func TestCollectAll_NoContainers(t *testing.T) {
	got := CollectAll(Parse([]byte(`<html><body><p>登录</p></body></html>`), ""))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestCollect_IsDeterministic(t *testing.T) {
	e := ProfileExtractor{Profile: DefaultProfile()}
	a := e.Extract([]byte(page), "")
	b := e.Extract([]byte(page), "")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two extractions differ")
	}
}

func TestParse_DecodesGBK(t *testing.T) {
	src := `<html><body><div class="questionLi"><h3 class="mark_name">5. 中文题干</h3></div></body></html>`
	encoded, err := simplifiedchinese.GBK.NewEncoder().String(src)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := CollectAll(Parse([]byte(encoded), "text/html; charset=gbk"))
	if len(got) != 1 || got[0].Stem != "中文题干" {
		t.Fatalf("unexpected result %+v", got)
	}
}

// A saved fragment has no <meta charset>; an ASCII-only head longer than the
// sniff window must not push the body into windows-1252.
func TestParse_UTF8WithoutMetaAndLongASCIIHead(t *testing.T) {
	head := "<script>var cfg = '" + strings.Repeat("x", 1300) + "';</script>"
	src := head + `<div class="questionLi"><h3 class="mark_name">1. 中文题干</h3>` +
		`<ul class="mark_letter"><li>对</li><li>错</li></ul>` +
		`<span class="element-invisible-hidden">正确答案：对</span></div>`
	got := CollectAll(Parse([]byte(src), ""))
	want := []Question{{
		Stem:    "中文题干",
		Options: []Option{{"A", "对"}, {"B", "错"}},
		Answer:  "A",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParse_UTF8BOM(t *testing.T) {
	src := "\xef\xbb\xbf" + `<div class="questionLi"><h3 class="mark_name">题干</h3></div>`
	got := CollectAll(Parse([]byte(src), ""))
	if len(got) != 1 || got[0].Stem != "题干" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestParse_SniffsGBKMetaWithoutContentType(t *testing.T) {
	src := `<html><head><meta charset="gbk"></head><body><div class="questionLi"><h3 class="mark_name">中文题干</h3></div></body></html>`
	encoded, err := simplifiedchinese.GBK.NewEncoder().String(src)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := CollectAll(Parse([]byte(encoded), ""))
	if len(got) != 1 || got[0].Stem != "中文题干" {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestParse_GarbageYieldsNoQuestions(t *testing.T) {
	if got := CollectAll(Parse([]byte{0xff, 0x00, '<', '<'}, "")); len(got) != 0 {
		t.Fatalf("expected no questions, got %+v", got)
	}
}

func TestVisible_ImportantAndCase(t *testing.T) {
	doc := Parse([]byte(`<div id="a" style="DISPLAY: None !important"><p id="b">x</p></div><p id="c" style="display:block">y</p>`), "")
	if Visible(doc.Find("#b").Get(0)) {
		t.Fatalf("child of display:none must be hidden")
	}
	if !Visible(doc.Find("#c").Get(0)) {
		t.Fatalf("display:block must be visible")
	}
	if Visible(nil) {
		t.Fatalf("nil node must not be visible")
	}
}

func TestClean(t *testing.T) {
	if got := Clean("  a \t\n b　c  "); got != "a b c" {
		t.Fatalf("Clean=%q", got)
	}
}

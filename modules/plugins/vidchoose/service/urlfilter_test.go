package service

import "testing"

func TestParseChannelRefLiteralID(t *testing.T) {
	f := newUrlFilter()

	ref := f.ParseChannelRef("UCuAXFkgsw1L7xaCfnd5JJOw")
	if ref.Kind != ChannelRefID || ref.Value != "UCuAXFkgsw1L7xaCfnd5JJOw" {
		t.Fatalf("literal id misclassified: %+v", ref)
	}
}

func TestParseChannelRefChannelURL(t *testing.T) {
	f := newUrlFilter()

	ref := f.ParseChannelRef("https://www.youtube.com/channel/UCuAXFkgsw1L7xaCfnd5JJOw")
	if ref.Kind != ChannelRefID || ref.Value != "UCuAXFkgsw1L7xaCfnd5JJOw" {
		t.Fatalf("channel url misclassified: %+v", ref)
	}
}

func TestParseChannelRefHandle(t *testing.T) {
	f := newUrlFilter()

	ref := f.ParseChannelRef("https://youtube.com/@somehandle")
	if ref.Kind != ChannelRefHandle || ref.Value != "somehandle" {
		t.Fatalf("handle url misclassified: %+v", ref)
	}

	ref = f.ParseChannelRef("@somehandle")
	if ref.Kind != ChannelRefHandle || ref.Value != "somehandle" {
		t.Fatalf("bare handle misclassified: %+v", ref)
	}
}

func TestParseChannelRefCustomAndBare(t *testing.T) {
	f := newUrlFilter()

	ref := f.ParseChannelRef("https://www.youtube.com/c/SomeCreator")
	if ref.Kind != ChannelRefName || ref.Value != "SomeCreator" {
		t.Fatalf("custom url misclassified: %+v", ref)
	}

	ref = f.ParseChannelRef("https://www.youtube.com/user/oldname")
	if ref.Kind != ChannelRefName || ref.Value != "oldname" {
		t.Fatalf("user url misclassified: %+v", ref)
	}

	ref = f.ParseChannelRef("some creator")
	if ref.Kind != ChannelRefName || ref.Value != "some creator" {
		t.Fatalf("bare token should fall through to name search: %+v", ref)
	}
}

func TestExtractVideoID(t *testing.T) {
	f := newUrlFilter()

	inputs := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"dQw4w9WgXcQ",
	}

	for _, input := range inputs {
		id, ok := f.ExtractVideoID(input)
		if !ok || id != "dQw4w9WgXcQ" {
			t.Errorf("ExtractVideoID(%q) = %q, %v", input, id, ok)
		}
	}

	if _, ok := f.ExtractVideoID("not a video url"); ok {
		t.Error("garbage should not extract a video id")
	}
}

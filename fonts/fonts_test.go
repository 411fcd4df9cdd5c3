package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(14); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}

	for _, name := range []FontName{HUD, Debug} {
		face := name.Get()
		if face == nil {
			t.Fatalf("Expected a face for %s", name)
		}
		if face.Metrics().Height <= 0 {
			t.Errorf("Expected %s to have a positive line height", name)
		}
	}

	if HUD.Get().Metrics().Height <= Debug.Get().Metrics().Height {
		t.Errorf("Expected the 14pt HUD face to be taller than the 10pt debug face")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Errorf("Expected an error for invalid font data")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected a panic for an unknown font")
		}
	}()
	FontName("missing").Get()
}

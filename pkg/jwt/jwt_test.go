package jwt

import "testing"

func TestCreateAndParse(t *testing.T) {
	j := NewJWT("test-secret")
	token, err := j.Create(JWTData{UserID: "p1", Name: "Priya", Role: "photographer"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	valid, data := j.Parse(token)
	if !valid || data == nil {
		t.Fatal("expected token to parse")
	}
	if data.UserID != "p1" || data.Name != "Priya" || data.Role != "photographer" {
		t.Fatalf("claims mismatch: %+v", data)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewJWT("secret-a").Create(JWTData{UserID: "p1", Role: "photographer"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if valid, _ := NewJWT("secret-b").Parse(token); valid {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if valid, _ := NewJWT("s").Parse("not-a-token"); valid {
		t.Fatal("garbage must not validate")
	}
}

// Tests in this file cover KEY=value positional parameter parsing.
package cmds

import "testing"

func TestKVArg(t *testing.T) {
	t.Parallel()

	args := []string{"msg=add users", "SEMVER=minor"}

	if v, ok := kvArg(args, "msg"); !ok || v != "add users" {
		t.Fatalf("kvArg(msg) = (%q, %v)", v, ok)
	}
	if v, ok := kvArg(args, "SEMVER"); !ok || v != "minor" {
		t.Fatalf("kvArg(SEMVER) = (%q, %v)", v, ok)
	}
	if _, ok := kvArg(args, "service"); ok {
		t.Fatal("kvArg found a key that is not present")
	}
	if v, ok := kvArg([]string{"msg="}, "msg"); !ok || v != "" {
		t.Fatalf("kvArg(msg=) = (%q, %v), want empty value present", v, ok)
	}
}

func TestCheckKVArgs(t *testing.T) {
	t.Parallel()

	if err := checkKVArgs([]string{"msg=x"}, "msg"); err != nil {
		t.Fatalf("checkKVArgs rejected a valid arg: %v", err)
	}
	if err := checkKVArgs(nil, "msg"); err != nil {
		t.Fatalf("checkKVArgs rejected empty args: %v", err)
	}
	if err := checkKVArgs([]string{"mgs=x"}, "msg"); err == nil {
		t.Fatal("checkKVArgs accepted a misspelled key")
	}
	if err := checkKVArgs([]string{"minor"}, "SEMVER"); err == nil {
		t.Fatal("checkKVArgs accepted a bare value")
	}
}

package attr

// Namespace qualifies an attribute name for XML serialization.
// A Namespace without a Prefix is absent: the URI alone never qualifies a
// name.
type Namespace struct {
	Prefix string // Markup prefix, e.g. "xlink"
	URI    string // Namespace URI passed to setAttributeNS
}

// Well-known attribute namespaces.
var (
	XLink = Namespace{Prefix: "xlink", URI: "http://www.w3.org/1999/xlink"}
	XML   = Namespace{Prefix: "xml", URI: "http://www.w3.org/XML/1998/namespace"}
	XMLNS = Namespace{Prefix: "xmlns", URI: "http://www.w3.org/2000/xmlns/"}
)

// IsZero reports whether ns is absent, that is, has no Prefix.
func (ns Namespace) IsZero() bool {
	return ns.Prefix == ""
}

// Equal reports whether ns and other qualify names the same way.
// All absent namespaces are equal.
func (ns Namespace) Equal(other Namespace) bool {
	if ns.IsZero() || other.IsZero() {
		return ns.IsZero() && other.IsZero()
	}
	return ns == other
}

// NamespaceURI returns the URI of ns, or "" when ns is absent.
func (ns Namespace) NamespaceURI() string {
	if ns.IsZero() {
		return ""
	}
	return ns.URI
}

// Qualify returns name prefixed with ns, or name itself if ns has no prefix.
func (ns Namespace) Qualify(name string) string {
	if ns.Prefix == "" {
		return name
	}
	return ns.Prefix + ":" + name
}

// String returns the namespace prefix.
func (ns Namespace) String() string {
	return ns.Prefix
}

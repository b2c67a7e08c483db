package descriptor

import (
	"strings"
	"unicode"

	"mapping-generator/internal/errors"
)

// ParseTypeExpr parses a type expression such as "List<OrderLine>",
// "Dictionary<string, Shop.Money>", "OrderStatus?" or "Int32[]".
//
//	type := name ["<" type {"," type} ">"] {"?" | "[]"}
//	name := ident {"." ident}
//
// module is recorded on unqualified references so resolution can prefer the
// declaring module.
func ParseTypeExpr(expr, module string) (*TypeRef, error) {
	p := &exprParser{src: expr, module: module}

	ref, err := p.parseType()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}

	return ref, nil
}

type exprParser struct {
	src    string
	pos    int
	module string
}

func (p *exprParser) parseType() (*TypeRef, error) {
	p.skipSpace()

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	ref := p.newRef(name)

	p.skipSpace()

	if p.peek() == '<' {
		p.pos++

		for {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}

			ref.Args = append(ref.Args, arg)

			p.skipSpace()

			switch p.peek() {
			case ',':
				p.pos++
				continue
			case '>':
				p.pos++
			default:
				return nil, p.errorf("expected ',' or '>'")
			}

			break
		}
	}

	for {
		p.skipSpace()

		switch {
		case p.peek() == '?':
			p.pos++
			ref = NullableOf(ref)
		case strings.HasPrefix(p.src[p.pos:], "[]"):
			p.pos += 2
			ref = ListOf(ref)
		default:
			return ref, nil
		}
	}
}

func (p *exprParser) parseName() (string, error) {
	start := p.pos

	for !p.eof() {
		r := rune(p.src[p.pos])
		if r == '.' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			p.pos++
			continue
		}

		break
	}

	name := p.src[start:p.pos]
	if name == "" {
		return "", p.errorf("expected type name")
	}

	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") || strings.Contains(name, "..") {
		return "", p.errorf("malformed qualified name %q", name)
	}

	if unicode.IsDigit(rune(name[0])) {
		return "", p.errorf("type name %q starts with a digit", name)
	}

	return name, nil
}

// newRef builds the reference for a bare or qualified name, mapping keywords
// and platform names onto their namespaces.
func (p *exprParser) newRef(name string) *TypeRef {
	if alias, ok := keywordAliases[name]; ok {
		return SimpleRef(alias)
	}

	ns, short := "", name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		ns, short = name[:i], name[i+1:]
	}

	if ns == "" || ns == SystemNamespace {
		switch {
		case IsSimpleName(short), short == Object:
			return SimpleRef(short)
		case short == NullableName:
			return &TypeRef{Name: short, Namespace: SystemNamespace, Module: PlatformModule}
		}
	}

	if ns == "" || ns == CollectionNamespace {
		if listNames[short] || dictionaryNames[short] {
			return &TypeRef{Name: short, Namespace: CollectionNamespace, Module: PlatformModule}
		}
	}

	return &TypeRef{Name: short, Namespace: ns, Module: p.module}
}

func (p *exprParser) skipSpace() {
	for !p.eof() && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	if p.eof() {
		return 0
	}

	return p.src[p.pos]
}

func (p *exprParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *exprParser) errorf(format string, args ...any) error {
	args = append([]any{p.src, p.pos}, args...)

	return errors.Wrapf(errors.ErrSource, "type expression %q at offset %d: "+format, args...)
}

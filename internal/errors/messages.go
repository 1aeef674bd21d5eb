package errors

import (
	"github.com/coolc/coolc/internal/token"
)

// The constructors below pin the exact diagnostic wording the semantic
// analyzer must produce. Keeping one function per message shape, rather
// than passing raw format strings around the passes, keeps the wording
// centralized for the wire-format contract.

// Class declarations.

func NewClassIllegalSelfType(pos token.Position) *CompilerError {
	return NewCompilerError(KindClassDecl, pos, "Class has illegal name SELF_TYPE", "", "")
}

func NewClassRedefined(pos token.Position, class string) *CompilerError {
	return NewCompilerErrorf(KindClassDecl, pos, "Class %s is redefined", class)
}

func NewClassIllegalParent(pos token.Position, class, parent string) *CompilerError {
	return NewCompilerErrorf(KindClassDecl, pos, "Class %s has illegal parent %s", class, parent)
}

func NewClassUndefinedParent(pos token.Position, class, parent string) *CompilerError {
	return NewCompilerErrorf(KindClassDecl, pos, "Class %s has undefined parent %s", class, parent)
}

func NewInheritanceCycle(pos token.Position, class string) *CompilerError {
	return NewCompilerErrorf(KindClassDecl, pos, "Inheritance cycle for class %s", class)
}

// Attributes.

func NewAttributeIllegalName(pos token.Position, class, attr string) *CompilerError {
	return NewCompilerErrorf(KindAttribute, pos, "Class %s has attribute with illegal name %s", class, attr)
}

func NewAttributeRedefined(pos token.Position, class, attr string) *CompilerError {
	return NewCompilerErrorf(KindAttribute, pos, "Class %s redefines attribute %s", class, attr)
}

func NewAttributeUndefinedType(pos token.Position, class, attr, typ string) *CompilerError {
	return NewCompilerErrorf(KindAttribute, pos, "Class %s has attribute %s with undefined type %s", class, attr, typ)
}

func NewAttributeRedefinesInherited(pos token.Position, class, attr string) *CompilerError {
	return NewCompilerErrorf(KindAttribute, pos, "Class %s redefines inherited attribute %s", class, attr)
}

func NewAttributeInitTypeIncompatible(pos token.Position, exprType, attr, declType string) *CompilerError {
	return NewCompilerErrorf(KindAttribute, pos,
		"Type %s of initialization expression of attribute %s is incompatible with declared type %s",
		exprType, attr, declType)
}

// Methods.

func NewMethodRedefined(pos token.Position, class, method string) *CompilerError {
	return NewCompilerErrorf(KindMethodDecl, pos, "Class %s redefines method %s", class, method)
}

func NewFormalIllegalName(pos token.Position, method, class, formal string) *CompilerError {
	return NewCompilerErrorf(KindMethodDecl, pos,
		"Method %s of class %s has formal parameter with illegal name %s", method, class, formal)
}

func NewFormalIllegalType(pos token.Position, method, class, formal, typ string) *CompilerError {
	return NewCompilerErrorf(KindMethodDecl, pos,
		"Method %s of class %s has formal parameter %s with illegal type %s", method, class, formal, typ)
}

func NewFormalRedefined(pos token.Position, method, class, formal string) *CompilerError {
	return NewCompilerErrorf(KindMethodDecl, pos,
		"Method %s of class %s redefines formal parameter %s", method, class, formal)
}

func NewFormalUndefinedType(pos token.Position, method, class, formal, typ string) *CompilerError {
	return NewCompilerErrorf(KindMethodDecl, pos,
		"Method %s of class %s has formal parameter %s with undefined type %s", method, class, formal, typ)
}

func NewMethodUndefinedReturnType(pos token.Position, method, class, typ string) *CompilerError {
	return NewCompilerErrorf(KindMethodDecl, pos, "Method %s of class %s has undefined return type %s", method, class, typ)
}

// Overrides.

func NewOverrideFormalCountMismatch(pos token.Position, class, method string) *CompilerError {
	return NewCompilerErrorf(KindOverride, pos, "Class %s overrides method %s with different number of formal parameters", class, method)
}

func NewOverrideFormalTypeChanged(pos token.Position, class, method, formal, from, to string) *CompilerError {
	return NewCompilerErrorf(KindOverride, pos,
		"Class %s overrides method %s but changes type of formal parameter %s from %s to %s", class, method, formal, from, to)
}

func NewOverrideReturnTypeChanged(pos token.Position, class, method, from, to string) *CompilerError {
	return NewCompilerErrorf(KindOverride, pos,
		"Class %s overrides method %s but changes return type from %s to %s", class, method, from, to)
}

// let/case.

func NewLetIllegalName(pos token.Position, name string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Let variable has illegal name %s", name)
}

func NewLetUndefinedType(pos token.Position, name, typ string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Let variable %s has undefined type %s", name, typ)
}

func NewLetInitIncompatible(pos token.Position, exprType, name, declType string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos,
		"Type %s of initialization expression of identifier %s is incompatible with declared type %s", exprType, name, declType)
}

func NewCaseIllegalName(pos token.Position, name string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Case variable has illegal name %s", name)
}

func NewCaseIllegalType(pos token.Position, name, typ string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Case variable %s has illegal type %s", name, typ)
}

func NewCaseUndefinedType(pos token.Position, name, typ string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Case variable %s has undefined type %s", name, typ)
}

// Expressions.

func NewUndefinedIdentifier(pos token.Position, name string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Undefined identifier %s", name)
}

func NewOperandNotInt(pos token.Position, op, typ string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Operand of %s has type %s instead of Int", op, typ)
}

func NewOperandNotBool(pos token.Position, op, typ string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Operand of %s has type %s instead of Bool", op, typ)
}

func NewCannotCompare(pos token.Position, lhs, rhs string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Cannot compare %s with %s", lhs, rhs)
}

func NewCannotAssignToSelf(pos token.Position) *CompilerError {
	return NewCompilerError(KindExpression, pos, "Cannot assign to self", "", "")
}

func NewAssignIncompatible(pos token.Position, exprType, declType, name string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos,
		"Type %s of assigned expression is incompatible with declared type %s of identifier %s", exprType, declType, name)
}

func NewNewUndefinedType(pos token.Position, typ string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "new is used with undefined type %s", typ)
}

func NewWhileConditionNotBool(pos token.Position, typ string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "While condition has type %s instead of Bool", typ)
}

func NewIfConditionNotBool(pos token.Position, typ string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "If condition has type %s instead of Bool", typ)
}

func NewUndefinedMethod(pos token.Position, method, class string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Undefined method %s in class %s", method, class)
}

func NewWrongNumberOfArguments(pos token.Position, method, class string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Method %s of class %s is applied to wrong number of arguments", method, class)
}

func NewArgumentIncompatible(pos token.Position, method, class, actualType, formal, declType string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos,
		"In call to method %s of class %s, actual type %s of formal parameter %s is incompatible with declared type %s",
		method, class, actualType, formal, declType)
}

func NewStaticDispatchSelfType(pos token.Position) *CompilerError {
	return NewCompilerError(KindExpression, pos, "Type of static dispatch cannot be SELF_TYPE", "", "")
}

func NewStaticDispatchUndefinedType(pos token.Position, typ string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Type %s of static dispatch is undefined", typ)
}

func NewStaticDispatchNotSuperclass(pos token.Position, staticType, exprType string) *CompilerError {
	return NewCompilerErrorf(KindExpression, pos, "Type %s of static dispatch is not a superclass of type %s", staticType, exprType)
}

// Method bodies.

func NewMethodBodyIncompatible(pos token.Position, bodyType, method, declType string) *CompilerError {
	return NewCompilerErrorf(KindBody, pos,
		"Type %s of the body of method %s is incompatible with declared return type %s", bodyType, method, declType)
}

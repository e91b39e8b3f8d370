package ast

// Kind tags the construct a node represents. Dispatch by kind replaces
// dispatch by concrete type: handlers register for a kind, and kinds that
// specialize a broader construct fall back to it through Bases.
type Kind int

const (
	// KindNone is the zero kind.
	KindNone Kind = iota

	// KindFile is the root of a parsed script.
	KindFile

	// KindSettingSection is a "*** Settings ***" section.
	KindSettingSection

	// KindVariableSection is a "*** Variables ***" section.
	KindVariableSection

	// KindTestCaseSection is a "*** Test Cases ***" or "*** Tasks ***" section.
	KindTestCaseSection

	// KindKeywordSection is a "*** Keywords ***" section.
	KindKeywordSection

	// KindCommentSection is a section holding only comments.
	KindCommentSection

	// KindTestCase is a single test or task block.
	KindTestCase

	// KindKeyword is a single user keyword block.
	KindKeyword

	// KindStatement is the abstract base of all statements.
	KindStatement

	// KindFixture is the abstract base of the setup and teardown settings.
	KindFixture

	// KindSection is the abstract base of all sections.
	KindSection

	// KindBlock is the abstract base of all body-carrying nodes.
	KindBlock

	// KindKeywordCall is a keyword invocation line.
	KindKeywordCall

	// KindSetup is a "[Setup]" setting.
	KindSetup

	// KindTeardown is a "[Teardown]" setting.
	KindTeardown

	// KindSuiteSetup is a "Suite Setup" setting.
	KindSuiteSetup

	// KindSuiteTeardown is a "Suite Teardown" setting.
	KindSuiteTeardown

	// KindTemplate is a "[Template]" setting.
	KindTemplate

	// KindTestTemplate is a "Test Template" setting.
	KindTestTemplate

	// KindKeywordName is the header line of a keyword definition.
	KindKeywordName

	// KindTestCaseName is the header line of a test case.
	KindTestCaseName

	// KindLibraryImport is a "Library" setting.
	KindLibraryImport

	// KindResourceImport is a "Resource" setting.
	KindResourceImport

	// KindVariablesImport is a "Variables" setting.
	KindVariablesImport

	// KindVariable is a variable table definition line.
	KindVariable

	// KindArguments is an "[Arguments]" setting.
	KindArguments

	// KindDocumentation is a "[Documentation]" setting.
	KindDocumentation
)

var kindNames = map[Kind]string{
	KindNone:            "None",
	KindFile:            "File",
	KindSettingSection:  "SettingSection",
	KindVariableSection: "VariableSection",
	KindTestCaseSection: "TestCaseSection",
	KindKeywordSection:  "KeywordSection",
	KindCommentSection:  "CommentSection",
	KindTestCase:        "TestCase",
	KindKeyword:         "Keyword",
	KindStatement:       "Statement",
	KindFixture:         "Fixture",
	KindSection:         "Section",
	KindBlock:           "Block",
	KindKeywordCall:     "KeywordCall",
	KindSetup:           "Setup",
	KindTeardown:        "Teardown",
	KindSuiteSetup:      "SuiteSetup",
	KindSuiteTeardown:   "SuiteTeardown",
	KindTemplate:        "Template",
	KindTestTemplate:    "TestTemplate",
	KindKeywordName:     "KeywordName",
	KindTestCaseName:    "TestCaseName",
	KindLibraryImport:   "LibraryImport",
	KindResourceImport:  "ResourceImport",
	KindVariablesImport: "VariablesImport",
	KindVariable:        "Variable",
	KindArguments:       "Arguments",
	KindDocumentation:   "Documentation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}

// kindBases maps each kind to the broader kinds it specializes, most
// specific first. Kinds absent from the table have no base.
var kindBases = map[Kind][]Kind{
	KindFile:            {KindBlock},
	KindSettingSection:  {KindSection},
	KindVariableSection: {KindSection},
	KindTestCaseSection: {KindSection},
	KindKeywordSection:  {KindSection},
	KindCommentSection:  {KindSection},
	KindSection:         {KindBlock},
	KindTestCase:        {KindBlock},
	KindKeyword:         {KindBlock},
	KindFixture:         {KindStatement},
	KindKeywordCall:     {KindStatement},
	KindSetup:           {KindFixture},
	KindTeardown:        {KindFixture},
	KindSuiteSetup:      {KindFixture},
	KindSuiteTeardown:   {KindFixture},
	KindTemplate:        {KindStatement},
	KindTestTemplate:    {KindStatement},
	KindKeywordName:     {KindStatement},
	KindTestCaseName:    {KindStatement},
	KindLibraryImport:   {KindStatement},
	KindResourceImport:  {KindStatement},
	KindVariablesImport: {KindStatement},
	KindVariable:        {KindStatement},
	KindArguments:       {KindStatement},
	KindDocumentation:   {KindStatement},
}

// Bases returns the kinds k specializes, most specific first, or nil.
func (k Kind) Bases() []Kind {
	return kindBases[k]
}

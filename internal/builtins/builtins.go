// Package builtins describes the standard BuiltIn library, the keywords
// every suite can call without importing anything.
package builtins

import "github.com/go-robot-tools/go-robot-lsp/internal/namespace"

// Library returns a namespace view of the BuiltIn library. Each call
// builds a fresh doc, so callers may extend what they get back.
func Library() *namespace.LibraryDoc {
	doc := &namespace.LibraryDoc{Name: namespace.BuiltInLibraryName}
	for _, kw := range keywords {
		doc.Keywords = append(doc.Keywords, &namespace.KeywordDoc{
			Name:    kw.name,
			LibName: namespace.BuiltInLibraryName,
			Args:    kw.args,
			Doc:     kw.doc,
		})
	}
	return doc
}

// Entry returns the import entry a namespace builder adds to a file to
// make the BuiltIn keywords resolvable.
func Entry() *namespace.LibraryEntry {
	return &namespace.LibraryEntry{Name: namespace.BuiltInLibraryName, Doc: Library()}
}

// Keyword returns the BuiltIn keyword matching name under normalized
// matching, or nil for names the library does not provide.
func Keyword(name string) *namespace.KeywordDoc {
	return canonical.FindKeyword(name)
}

// IsBuiltinKeyword reports whether name resolves to a BuiltIn keyword.
func IsBuiltinKeyword(name string) bool {
	return Keyword(name) != nil
}

var canonical = Library()

// keywords lists the BuiltIn keywords with their argument specifications.
var keywords = []struct {
	name string
	args []string
	doc  string
}{
	// Wrappers forwarding to other keywords
	{"Run Keyword", []string{"name", "*args"}, "Executes the given keyword with the given arguments."},
	{"Run Keyword And Continue On Failure", []string{"name", "*args"}, "Runs the keyword and continues execution even if a failure occurs."},
	{"Run Keyword And Expect Error", []string{"expected_error", "name", "*args"}, "Runs the keyword and checks that the expected error occurred."},
	{"Run Keyword And Ignore Error", []string{"name", "*args"}, "Runs the given keyword with the given arguments and ignores possible error."},
	{"Run Keyword And Return", []string{"name", "*args"}, "Runs the specified keyword and returns from the enclosing user keyword."},
	{"Run Keyword And Return If", []string{"condition", "name", "*args"}, "Runs the specified keyword and returns from the enclosing user keyword if condition is true."},
	{"Run Keyword And Return Status", []string{"name", "*args"}, "Runs the given keyword and returns the status as a Boolean value."},
	{"Run Keyword If", []string{"condition", "name", "*args"}, "Runs the given keyword with the given arguments if condition is true."},
	{"Run Keyword If All Critical Tests Passed", []string{"name", "*args"}, "Runs the given keyword with the given arguments if all critical tests passed."},
	{"Run Keyword If All Tests Passed", []string{"name", "*args"}, "Runs the given keyword with the given arguments if all tests passed."},
	{"Run Keyword If Any Critical Tests Failed", []string{"name", "*args"}, "Runs the given keyword with the given arguments if any critical tests failed."},
	{"Run Keyword If Any Tests Failed", []string{"name", "*args"}, "Runs the given keyword with the given arguments if one or more tests failed."},
	{"Run Keyword If Test Failed", []string{"name", "*args"}, "Runs the given keyword with the given arguments if the test failed."},
	{"Run Keyword If Test Passed", []string{"name", "*args"}, "Runs the given keyword with the given arguments if the test passed."},
	{"Run Keyword If Timeout Occurred", []string{"name", "*args"}, "Runs the given keyword if either a test or a keyword timeout has occurred."},
	{"Run Keyword Unless", []string{"condition", "name", "*args"}, "Runs the given keyword with the given arguments if condition is false."},
	{"Run Keywords", []string{"*keywords"}, "Executes all the given keywords in a sequence."},
	{"Repeat Keyword", []string{"repeat", "name", "*args"}, "Executes the specified keyword multiple times."},
	{"Wait Until Keyword Succeeds", []string{"retry", "retry_interval", "name", "*args"}, "Runs the specified keyword and retries if it fails."},

	// Logging
	{"Log", []string{"message", "level=INFO", "html=False", "console=False"}, "Logs the given message with the given level."},
	{"Log Many", []string{"*messages"}, "Logs the given messages as separate entries using the INFO level."},
	{"Log To Console", []string{"message", "stream=STDOUT", "no_newline=False"}, "Logs the given message to the console."},
	{"Log Variables", []string{"level=INFO"}, "Logs all variables in the current scope with given log level."},
	{"Comment", []string{"*messages"}, "Displays the given messages in the log file as keyword arguments."},
	{"Set Log Level", []string{"level"}, "Sets the log threshold to the specified level."},

	// Control
	{"No Operation", nil, "Does absolutely nothing."},
	{"Sleep", []string{"time_", "reason=None"}, "Pauses the test executed for the given time."},
	{"Fail", []string{"msg=None", "*tags"}, "Fails the test with the given message and optionally alters its tags."},
	{"Fatal Error", []string{"msg=None"}, "Stops the whole test execution."},
	{"Pass Execution", []string{"message", "*tags"}, "Skips rest of the current test, setup, or teardown with PASS status."},
	{"Pass Execution If", []string{"condition", "message", "*tags"}, "Conditionally skips rest of the current test, setup, or teardown with PASS status."},
	{"Skip", []string{"msg=Skipped"}, "Skips the rest of the current test."},
	{"Skip If", []string{"condition", "msg=None"}, "Skips the rest of the current test if the condition is true."},
	{"Return From Keyword", []string{"*return_values"}, "Returns from the enclosing user keyword."},
	{"Return From Keyword If", []string{"condition", "*return_values"}, "Returns from the enclosing user keyword if condition is true."},

	// Variables
	{"Set Variable", []string{"*values"}, "Returns the given values which can then be assigned to variables."},
	{"Set Local Variable", []string{"name", "*values"}, "Makes a variable available everywhere within the local scope."},
	{"Set Test Variable", []string{"name", "*values"}, "Makes a variable available everywhere within the scope of the current test."},
	{"Set Task Variable", []string{"name", "*values"}, "Makes a variable available everywhere within the scope of the current task."},
	{"Set Suite Variable", []string{"name", "*values"}, "Makes a variable available everywhere within the scope of the current suite."},
	{"Set Global Variable", []string{"name", "*values"}, "Makes a variable available globally in all tests and suites."},
	{"Get Variable Value", []string{"name", "default=None"}, "Returns variable value or default if the variable does not exist."},
	{"Get Variables", []string{"no_decoration=False"}, "Returns a dictionary containing all variables in the current scope."},
	{"Variable Should Exist", []string{"name", "msg=None"}, "Fails unless the given variable exists within the current scope."},
	{"Variable Should Not Exist", []string{"name", "msg=None"}, "Fails if the given variable exists within the current scope."},
	{"Replace Variables", []string{"text"}, "Replaces variables in the given text with their current values."},

	// Verification
	{"Should Be Equal", []string{"first", "second", "msg=None", "values=True"}, "Fails if the given objects are unequal."},
	{"Should Not Be Equal", []string{"first", "second", "msg=None", "values=True"}, "Fails if the given objects are equal."},
	{"Should Be Equal As Integers", []string{"first", "second", "msg=None", "values=True", "base=None"}, "Fails if objects are unequal after converting them to integers."},
	{"Should Be Equal As Numbers", []string{"first", "second", "msg=None", "values=True", "precision=6"}, "Fails if objects are unequal after converting them to real numbers."},
	{"Should Be Equal As Strings", []string{"first", "second", "msg=None", "values=True"}, "Fails if objects are unequal after converting them to strings."},
	{"Should Be True", []string{"condition", "msg=None"}, "Fails if the given condition is not true."},
	{"Should Not Be True", []string{"condition", "msg=None"}, "Fails if the given condition is true."},
	{"Should Contain", []string{"container", "item", "msg=None", "values=True", "ignore_case=False"}, "Fails if container does not contain item one or more times."},
	{"Should Not Contain", []string{"container", "item", "msg=None", "values=True"}, "Fails if container contains item one or more times."},
	{"Should Start With", []string{"str1", "str2", "msg=None", "values=True"}, "Fails if the string str1 does not start with the string str2."},
	{"Should End With", []string{"str1", "str2", "msg=None", "values=True"}, "Fails if the string str1 does not end with the string str2."},
	{"Should Match", []string{"string", "pattern", "msg=None", "values=True"}, "Fails if the given string does not match the given pattern."},
	{"Should Match Regexp", []string{"string", "pattern", "msg=None", "values=True"}, "Fails if string does not match pattern as a regular expression."},
	{"Should Be Empty", []string{"item", "msg=None"}, "Verifies that the given item is empty."},
	{"Should Not Be Empty", []string{"item", "msg=None"}, "Verifies that the given item is not empty."},
	{"Keyword Should Exist", []string{"name", "msg=None"}, "Fails unless the given keyword exists in the current scope."},

	// Conversion and collections
	{"Evaluate", []string{"expression", "modules=None", "namespace=None"}, "Evaluates the given expression in Python and returns the result."},
	{"Convert To Integer", []string{"item", "base=None"}, "Converts the given item to an integer number."},
	{"Convert To Number", []string{"item", "precision=None"}, "Converts the given item to a floating point number."},
	{"Convert To String", []string{"item"}, "Converts the given item to a Unicode string."},
	{"Convert To Boolean", []string{"item"}, "Converts the given item to Boolean true or false."},
	{"Catenate", []string{"*items"}, "Catenates the given items together and returns the resulted string."},
	{"Create List", []string{"*items"}, "Returns a list containing given items."},
	{"Create Dictionary", []string{"*items"}, "Creates and returns a dictionary based on the given items."},
	{"Get Count", []string{"container", "item"}, "Returns and logs how many times item is found from container."},
	{"Get Length", []string{"item"}, "Returns and logs the length of the given item as an integer."},
	{"Length Should Be", []string{"item", "length", "msg=None"}, "Verifies that the length of the given item is correct."},
	{"Get Time", []string{"format=timestamp", "time_=NOW"}, "Returns the given time in the requested format."},
	{"Regexp Escape", []string{"*patterns"}, "Returns each argument string escaped for use as a regular expression."},

	// Suite and test metadata
	{"Set Test Message", []string{"message", "append=False"}, "Sets message for the current test case."},
	{"Set Test Documentation", []string{"doc", "append=False"}, "Sets documentation for the current test case."},
	{"Set Suite Documentation", []string{"doc", "append=False"}, "Sets documentation for the current test suite."},
	{"Set Suite Metadata", []string{"name", "value", "append=False"}, "Sets metadata for the current test suite."},
	{"Set Tags", []string{"*tags"}, "Adds given tags for the current test or all tests in a suite."},
	{"Remove Tags", []string{"*tags"}, "Removes given tags from the current test or all tests in a suite."},

	// Libraries
	{"Call Method", []string{"object", "method_name", "*args", "**kwargs"}, "Calls the named method of the given object with the provided arguments."},
	{"Import Library", []string{"name", "*args"}, "Imports a library with the given name and optional arguments."},
	{"Import Resource", []string{"path"}, "Imports a resource file with the given path."},
	{"Import Variables", []string{"path", "*args"}, "Imports a variable file with the given path and optional arguments."},
	{"Reload Library", []string{"name_or_instance=None"}, "Rechecks what keywords the specified library provides."},
	{"Set Library Search Order", []string{"*search_order"}, "Sets the resolution order to use when a name matches multiple keywords."},
}

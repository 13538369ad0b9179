package seed

import (
	"quizdesk/internal/quiz"
)

// rawRow keeps a seed question in its authoring format: every option and the
// correct answer carry an "A) ..." prefix. normalizeRow strips the prefixes
// so only the bare label reaches the store.
type rawRow struct {
	text    string
	a       string
	b       string
	c       string
	d       string
	correct string
}

func normalizeRow(row rawRow) quiz.Question {
	strip := func(s string) string {
		_, text, _ := quiz.SplitComposite(s)
		return text
	}

	label, correctText, ok := quiz.SplitComposite(row.correct)
	if !ok {
		label = quiz.LabelA
	}

	return quiz.Question{
		Text: row.text,
		Options: map[quiz.Label]string{
			quiz.LabelA: strip(row.a),
			quiz.LabelB: strip(row.b),
			quiz.LabelC: strip(row.c),
			quiz.LabelD: strip(row.d),
		},
		Correct:     label,
		Explanation: correctText,
	}
}

// defaultSets holds the built-in question block for each course table.
func defaultSets() map[string][]rawRow {
	return map[string][]rawRow{
		"Business_Applications":        businessApplications,
		"Business_Management":          businessManagement,
		"Business_Analytics":           businessAnalytics,
		"Business_Database_Management": businessDatabaseManagement,
	}
}

var businessApplications = []rawRow{
	{
		text:    "What is the output of `print(type(10/2))` in Python?",
		a:       "A) <class 'int'>",
		b:       "B) <class 'float'>",
		c:       "C) <class 'str'>",
		d:       "D) 5.0",
		correct: "B) <class 'float'>",
	},
	{
		text:    "Which keyword is used to define a function in Python?",
		a:       "A) `func`",
		b:       "B) `define`",
		c:       "C) `def`",
		d:       "D) `function`",
		correct: "C) `def`",
	},
	{
		text:    "How do you start a multi-line comment or docstring in Python?",
		a:       "A) `//`",
		b:       "B) `/*`",
		c:       "C) `\"\"\"`",
		d:       "D) `#`",
		correct: "C) `\"\"\"`",
	},
	{
		text:    "Which data structure is ordered and mutable?",
		a:       "A) Tuple",
		b:       "B) Set",
		c:       "C) Dictionary",
		d:       "D) List",
		correct: "D) List",
	},
	{
		text:    "What method adds an element to the end of a list?",
		a:       "A) `.insert()`",
		b:       "B) `.add()`",
		c:       "C) `.append()`",
		d:       "D) `.push()`",
		correct: "C) `.append()`",
	},
	{
		text:    "What is the correct way to check if `x` is greater than 5 AND less than 10?",
		a:       "A) `x > 5 and x < 10`",
		b:       "B) `5 < x < 10`",
		c:       "C) `A and B are correct`",
		d:       "D) `x > 5 & x < 10`",
		correct: "C) `A and B are correct`",
	},
	{
		text:    "In a `for` loop, what does the `range(5)` function iterate over?",
		a:       "A) 1, 2, 3, 4, 5",
		b:       "B) 0, 1, 2, 3, 4",
		c:       "C) 0, 1, 2, 3, 4, 5",
		d:       "D) 1, 2, 3, 4",
		correct: "B) 0, 1, 2, 3, 4",
	},
	{
		text:    "Which of the following is NOT a valid variable name in Python?",
		a:       "A) `_my_var`",
		b:       "B) `myVar2`",
		c:       "C) `2myVar`",
		d:       "D) `my_var`",
		correct: "C) `2myVar`",
	},
	{
		text:    "What is the primary purpose of the `if __name__ == \"__main__\":` block?",
		a:       "A) To define global variables.",
		b:       "B) To import external modules.",
		c:       "C) To ensure code runs only when the script is executed directly.",
		d:       "D) To define the main class.",
		correct: "C) To ensure code runs only when the script is executed directly.",
	},
	{
		text:    "What does the `pass` statement do in Python?",
		a:       "A) Jumps to the next loop iteration.",
		b:       "B) Exits the loop.",
		c:       "C) Does nothing; it's a placeholder.",
		d:       "D) Skips the current block of code.",
		correct: "C) Does nothing; it's a placeholder.",
	},
}

var businessManagement = []rawRow{
	{
		text:    "Which of the following is a primary component of a good business strategy?",
		a:       "A) Daily operational tasks",
		b:       "B) Long-term goals and resource allocation",
		c:       "C) Employee break times",
		d:       "D) Server maintenance",
		correct: "B) Long-term goals and resource allocation",
	},
	{
		text:    "In management psychology, what is **Maslow's Hierarchy of Needs** often used to explain?",
		a:       "A) Financial accounting principles",
		b:       "B) Employee motivation",
		c:       "C) Marketing segmentation",
		d:       "D) IT infrastructure",
		correct: "B) Employee motivation",
	},
	{
		text:    "What leadership style involves the leader making decisions and announcing them to the group?",
		a:       "A) Democratic",
		b:       "B) Laissez-faire",
		c:       "C) Autocratic",
		d:       "D) Participative",
		correct: "C) Autocratic",
	},
	{
		text:    "**Emotional Intelligence (EQ)** in the workplace is primarily concerned with:",
		a:       "A) Technical skills and coding ability",
		b:       "B) The ability to perceive and manage emotions",
		c:       "C) High-speed data processing",
		d:       "D) Strict adherence to rules",
		correct: "B) The ability to perceive and manage emotions",
	},
	{
		text:    "What is the term for breaking down a large project into smaller, manageable tasks?",
		a:       "A) Micromanagement",
		b:       "B) Delegation",
		c:       "C) Work Breakdown Structure (WBS)",
		d:       "D) Brainstorming",
		correct: "C) Work Breakdown Structure (WBS)",
	},
	{
		text:    "A **SWOT analysis** helps a business identify its:",
		a:       "A) Sales, Wages, Operating, and Taxes",
		b:       "B) Strengths, Weaknesses, Opportunities, and Threats",
		c:       "C) Suppliers, Workers, Outsourcers, and Technologies",
		d:       "D) Stock, Wealth, Overhead, and Turnover",
		correct: "B) Strengths, Weaknesses, Opportunities, and Threats",
	},
	{
		text:    "What is **Groupthink**?",
		a:       "A) A highly productive team meeting.",
		b:       "B) A phenomenon where the desire for conformity in a group results in irrational decision-making.",
		c:       "C) A method for generating new ideas.",
		d:       "D) A managerial structure.",
		correct: "B) A phenomenon where the desire for conformity in a group results in irrational decision-making.",
	},
	{
		text:    "The 'P' in the **POLC framework** of management stands for:",
		a:       "A) Performance",
		b:       "B) Planning",
		c:       "C) Procedure",
		d:       "D) Production",
		correct: "B) Planning",
	},
	{
		text:    "In **Herzberg's Two-Factor Theory**, what are factors like salary and working conditions called?",
		a:       "A) Motivators",
		b:       "B) Hygiene Factors",
		c:       "C) Achievement Factors",
		d:       "D) Growth Factors",
		correct: "B) Hygiene Factors",
	},
	{
		text:    "What is the process of setting performance goals and providing feedback called?",
		a:       "A) Mentorship",
		b:       "B) Coaching",
		c:       "C) Performance Appraisal",
		d:       "D) Recruitment",
		correct: "C) Performance Appraisal",
	},
}

var businessAnalytics = []rawRow{
	{
		text:    "Which Excel function is best for a conditional sum (summing values that meet a criterion)?",
		a:       "A) `SUM()`",
		b:       "B) `AVERAGEIF()`",
		c:       "C) `SUMIF()`",
		d:       "D) `COUNTIF()`",
		correct: "C) `SUMIF()`",
	},
	{
		text:    "What is the primary purpose of an **Excel Pivot Table**?",
		a:       "A) To perform complex arithmetic operations.",
		b:       "B) To summarize, analyze, explore, and present data.",
		c:       "C) To create macros for automation.",
		d:       "D) To import data from external sources.",
		correct: "B) To summarize, analyze, explore, and present data.",
	},
	{
		text:    "A **Line Chart** is generally the best choice for showing:",
		a:       "A) Proportions of a whole.",
		b:       "B) Distribution of data points.",
		c:       "C) Trends over time.",
		d:       "D) Correlation between two variables.",
		correct: "C) Trends over time.",
	},
	{
		text:    "What kind of analysis is performed when a manager examines a sales chart to understand if a recent marketing campaign was effective?",
		a:       "A) Prescriptive Analysis",
		b:       "B) Diagnostic Analysis",
		c:       "C) Predictive Analysis",
		d:       "D) Descriptive Analysis",
		correct: "D) Descriptive Analysis",
	},
	{
		text:    "In Excel, what does the **'Relative'** reference `A1` change to when copied one cell down?",
		a:       "A) `A1`",
		b:       "B) `$A$1`",
		c:       "C) `A2`",
		d:       "D) `B1`",
		correct: "C) `A2`",
	},
	{
		text:    "To keep the **column** fixed but allow the **row** to change when copying a formula, what mixed reference should be used?",
		a:       "A) `$A1`",
		b:       "B) `A$1`",
		c:       "C) `$A$1`",
		d:       "D) `A1`",
		correct: "A) `$A1`",
	},
	{
		text:    "Which term describes the process of identifying errors or inconsistencies in data to improve its quality?",
		a:       "A) Data Mining",
		b:       "B) Data Cleansing (or Scrubbing)",
		c:       "C) Data Modeling",
		d:       "D) Data Visualization",
		correct: "B) Data Cleansing (or Scrubbing)",
	},
	{
		text:    "A **Bar Chart** is most effective for comparing:",
		a:       "A) Continuous change over time.",
		b:       "B) Values across different categories.",
		c:       "C) Parts of a whole.",
		d:       "D) The frequency of an event.",
		correct: "B) Values across different categories.",
	},
	{
		text:    "In a Pivot Table, what area is used to filter the entire table's data?",
		a:       "A) Values",
		b:       "B) Rows",
		c:       "C) Filters (or Report Filter)",
		d:       "D) Columns",
		correct: "C) Filters (or Report Filter)",
	},
	{
		text:    "The goal of **Predictive Analytics** is to:",
		a:       "A) Understand why an event happened.",
		b:       "B) Suggest a course of action.",
		c:       "C) Forecast what might happen in the future.",
		d:       "D) Summarize current data.",
		correct: "C) Forecast what might happen in the future.",
	},
}

var businessDatabaseManagement = []rawRow{
	{
		text:    "Which Relational Algebra operation combines the tuples from two relations, eliminating duplicates?",
		a:       "A) Join",
		b:       "B) Project",
		c:       "C) Union",
		d:       "D) Select",
		correct: "C) Union",
	},
	{
		text:    "In an **Entity-Relationship (ER) Model**, a diamond shape represents a(n):",
		a:       "A) Entity",
		b:       "B) Attribute",
		c:       "C) Relationship",
		d:       "D) Primary Key",
		correct: "C) Relationship",
	},
	{
		text:    "What is the purpose of **Normalization** in a relational database?",
		a:       "A) To speed up queries.",
		b:       "B) To reduce data redundancy and improve data integrity.",
		c:       "C) To encrypt the database.",
		d:       "D) To create views.",
		correct: "B) To reduce data redundancy and improve data integrity.",
	},
	{
		text:    "Which Normal Form (NF) requires that there are no partial dependencies of non-key attributes on the primary key?",
		a:       "A) 1NF",
		b:       "B) 2NF",
		c:       "C) 3NF",
		d:       "D) BCNF",
		correct: "B) 2NF",
	},
	{
		text:    "A **Foreign Key** is used to:",
		a:       "A) Uniquely identify a record in a table.",
		b:       "B) Establish a link between two tables.",
		c:       "C) Store very large data objects.",
		d:       "D) Sort the data in a table.",
		correct: "B) Establish a link between two tables.",
	},
	{
		text:    "In **Relational Algebra**, the **Select** (σ) operation is used to:",
		a:       "A) Choose specific columns.",
		b:       "B) Filter rows based on a condition.",
		c:       "C) Combine two tables.",
		d:       "D) Rename a column.",
		correct: "B) Filter rows based on a condition.",
	},
	{
		text:    "A **recursive relationship** in an ERD is one between:",
		a:       "A) Two different entities.",
		b:       "B) An entity and an attribute.",
		c:       "C) Two different attributes.",
		d:       "D) An entity and itself.",
		correct: "D) An entity and itself.",
	},
	{
		text:    "What does the 'R' stand for in **RDBMS**?",
		a:       "A) Restricted",
		b:       "B) Relational",
		c:       "C) Redundant",
		d:       "D) Retrieval",
		correct: "B) Relational",
	},
	{
		text:    "The condition for **Third Normal Form (3NF)** is: The table must be in 2NF, and there should be no:",
		a:       "A) Partial Dependencies.",
		b:       "B) Multi-valued Attributes.",
		c:       "C) Transitive Dependencies.",
		d:       "D) Redundant Data.",
		correct: "C) Transitive Dependencies.",
	},
	{
		text:    "A **many-to-many (M:N)** relationship in an ERD is typically resolved in a relational model by:",
		a:       "A) Creating a supertype/subtype.",
		b:       "B) Introducing a new **linking table**.",
		c:       "C) Using a composite key in one of the tables.",
		d:       "D) Splitting the relationship.",
		correct: "B) Introducing a new **linking table**.",
	},
}

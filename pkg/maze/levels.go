package maze

// Built-in mazes, ten per difficulty, in play order.
var catalog = [difficultyCount][LevelsPerDifficulty]Maze{
	Easy: {
		mustNew(
			"########",
			"#S     #",
			"#      #",
			"#      #",
			"#      #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"# ##   #",
			"#      #",
			"#      #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"#  ##  #",
			"#      #",
			"#  ##  #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"# ###  #",
			"#      #",
			"#  ##  #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"#  ##  #",
			"#   #  #",
			"#   #  #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S #   #",
			"#  #   #",
			"#  #   #",
			"#  ##  #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S #   #",
			"#  #   #",
			"#  ##  #",
			"#      #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"# #### #",
			"#      #",
			"#  ##  #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"#  #####",
			"#      #",
			"# #### #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"# ###  #",
			"#   #  #",
			"# ###  #",
			"#     E#",
			"########",
		),
	},
	Normal: {
		mustNew(
			"########",
			"#     S#",
			"#      #",
			"#      #",
			"#      #",
			"#E     #",
			"########",
		),
		mustNew(
			"########",
			"#     S#",
			"#   ## #",
			"#      #",
			"#      #",
			"#E     #",
			"########",
		),
		mustNew(
			"########",
			"#     S#",
			"#  ##  #",
			"#      #",
			"#  ##  #",
			"#E     #",
			"########",
		),
		mustNew(
			"########",
			"#     S#",
			"#  ### #",
			"#      #",
			"#  ##  #",
			"#E     #",
			"########",
		),
		mustNew(
			"########",
			"#     S#",
			"#  ##  #",
			"#  #   #",
			"#  #   #",
			"#E     #",
			"########",
		),
		mustNew(
			"########",
			"#   # S#",
			"#   #  #",
			"#   #  #",
			"#  ##  #",
			"#E     #",
			"########",
		),
		mustNew(
			"########",
			"#   # S#",
			"#   #  #",
			"#  ##  #",
			"#      #",
			"#E     #",
			"########",
		),
		mustNew(
			"########",
			"#     S#",
			"# #### #",
			"#      #",
			"#  ##  #",
			"#E     #",
			"########",
		),
		mustNew(
			"########",
			"#     S#",
			"#####  #",
			"#      #",
			"# #### #",
			"#E     #",
			"########",
		),
		mustNew(
			"########",
			"#     S#",
			"#  ### #",
			"#  #   #",
			"#  ### #",
			"#E     #",
			"########",
		),
	},
	Hard: {
		mustNew(
			"########",
			"#S     #",
			"# ###  #",
			"#      #",
			"#  ##  #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"#  ##  #",
			"#   #  #",
			"#   #  #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S #   #",
			"#  #   #",
			"#  #   #",
			"#  ##  #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S #   #",
			"#  #   #",
			"#  ##  #",
			"#      #",
			"#    E #",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"# #### #",
			"#      #",
			"#  ##  #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"#  #####",
			"#      #",
			"# #### #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"# ###  #",
			"#   #  #",
			"# ###  #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S     #",
			"# ###  #",
			"#   #  #",
			"### #  #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S #   #",
			"# # ## #",
			"# #  # #",
			"# #### #",
			"#     E#",
			"########",
		),
		mustNew(
			"########",
			"#S #   #",
			"# ###  #",
			"#   #  #",
			"### #  #",
			"#     E#",
			"########",
		),
	},
}
